package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/arena/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-web: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-web: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	page := renderPage(htmlPage, cfg)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(cfg.Web.Host, cfg.Web.Port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the connection placeholders of the landing page.
func renderPage(page string, cfg config.Config) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", cfg.Web.DisplayHost,
		"{{.SSHPort}}", cfg.SSH.Port,
	).Replace(page)
}
