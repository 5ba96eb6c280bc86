package client

import (
	"fmt"
	"time"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/hud"
)

// clearSequence wipes the terminal. The canvas only paints set cells, so
// every frame starts from a blank screen.
const clearSequence = "\033[H\033[2J"

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	cw := c.chunkWriter
	cw.WriteString(clearSequence)

	if err := c.session.Draw(c.canvas, cw); err != nil {
		return err
	}

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(cw)

	c.drawUI()

	return cw.Flush()
}

// drawUI draws the status line and whichever screen sits on top of the arena.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if line := c.view.StatusLine(termWidth); line != "" {
		c.chunkWriter.WriteAt(1, 1, line)
	}

	switch {
	case c.state.ShuttingDown:
		c.drawShutdownScreen(centerX, centerY)
	case c.state.isInactive:
		c.drawInactivityScreen(centerX, centerY)
	default:
		c.drawOverlay(centerX, centerY)
	}
}

// drawOverlay centers the pause or end panel.
func (c *Client) drawOverlay(centerX, centerY int) {
	lines, width := hud.OverlayLines(c.view.Overlay())
	top := centerY - len(lines)/2
	for i, line := range lines {
		c.chunkWriter.WriteAt(centerX-width/2, top+i, line)
	}
}

// drawInactivityScreen warns the user before an idle disconnect.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.state.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	msg1 := "The server is restarting for maintenance."
	cw.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	cw.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(c.state.shutdownTimer) + 1
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", remaining)
	cw.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	cw.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}
