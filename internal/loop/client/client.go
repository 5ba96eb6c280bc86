// Package client runs one connection: it reads terminal input, drives a
// game session frame by frame and renders it.
package client

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/game"
	"github.com/tomz197/arena/internal/hud"
	"github.com/tomz197/arena/internal/input"
	"github.com/tomz197/arena/internal/loop"
	"github.com/tomz197/arena/internal/loop/server"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer // nil for local play
	handle       *server.ClientHandle
	session      *loop.Session
	view         *hud.View
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	Config       config.Config
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger
	Renderer     *lipgloss.Renderer // Styles the HUD; nil uses the default
	Rand         *rand.Rand         // nil seeds from the clock
}

// NewClient creates a client and its session. gs may be nil when no server
// hosts the connection.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	view := hud.NewView(opts.Renderer)
	session, err := loop.NewSession(opts.Config, loop.Options{
		Logger:    logger,
		Rand:      rng,
		Presenter: view,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	arena := opts.Config.Arena
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, arena.Width, arena.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		server:       gs,
		session:      session,
		view:         view,
		state:        NewClientState(time.Now()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("user", opts.Username),
	}
	if gs != nil {
		c.handle = gs.RegisterClient(opts.Username)
	}
	return c, nil
}

// Session returns the game session driven by the client.
func (c *Client) Session() *loop.Session {
	return c.session
}

// Run starts the client loop. Blocks until the client quits, idles out or
// the server shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.session.Close()

	if c.handle != nil {
		defer c.server.UnregisterClient(c.handle.ID)
	}

	lastTime := time.Now()
	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = clampDelta(frameStart.Sub(lastTime))
		lastTime = frameStart

		if err := c.frame(frameStart); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// frame runs one iteration of the client loop.
func (c *Client) frame(now time.Time) error {
	in := input.ReadInput(c.inputStream)
	c.state.trackActivity(in.Active(), now)
	if in.Quit || in.Closed {
		c.state.Running = false
		return nil
	}

	c.processServerEvents()

	if c.state.ShuttingDown {
		c.state.tickShutdown()
	} else {
		if err := c.session.HandleInput(in, c.state.delta); err != nil {
			return fmt.Errorf("handle input: %w", err)
		}
		if err := c.session.Tick(c.state.delta); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		c.reportResult()
	}

	c.updateScreen()
	return c.drawFrame()
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown {
				c.logger.Info("server shutting down")
				c.state.beginShutdown()
			}
		default:
			return
		}
	}
}

// reportResult sends the outcome of a finished session to the server, once
// per session.
func (c *Client) reportResult() {
	if c.handle == nil || !c.session.State().Terminal() || c.state.reportedID == c.session.ID() {
		return
	}
	c.state.reportedID = c.session.ID()
	c.server.ReportResult(c.handle.ID, server.Result{
		Username: c.username,
		Score:    c.session.Score().Value(),
		Elapsed:  time.Duration(c.session.Elapsed() * float64(time.Second)),
		Won:      c.session.State() == game.StateVictory,
	})
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
