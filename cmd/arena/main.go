package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/loop/client"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := config.NewLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c, err := client.NewClient(nil, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Config:   cfg,
		Username: config.GetEnv("USER", "player"),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Info("session started", "session", c.Session().ID())
	return c.Run()
}
