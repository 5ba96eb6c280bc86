package client

import (
	"time"

	"github.com/tomz197/arena/internal/config"
)

// ClientState holds the per-connection bookkeeping that lives outside the
// game session: frame timing, inactivity and shutdown countdowns.
type ClientState struct {
	Running       bool
	ShuttingDown  bool
	delta         time.Duration // Frame delta time, clamped
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	lastInput     time.Time
	isInactive    bool
	reportedID    string // Session whose result was already reported
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Running:   true,
		lastInput: now,
	}
}

// trackActivity updates the inactivity flags for one frame and stops the
// client once it has been idle for too long.
func (s *ClientState) trackActivity(active bool, now time.Time) {
	if active {
		s.lastInput = now
		s.isInactive = false
		return
	}
	idle := now.Sub(s.lastInput).Seconds()
	switch {
	case idle > config.InactivityDisconnectUser:
		s.Running = false
	case idle > config.InactivityWarnUser:
		s.isInactive = true
	}
}

// beginShutdown starts the shutdown countdown.
func (s *ClientState) beginShutdown() {
	if s.ShuttingDown {
		return
	}
	s.ShuttingDown = true
	s.shutdownTimer = config.ShutdownDisplaySeconds
}

// tickShutdown advances the shutdown countdown.
func (s *ClientState) tickShutdown() {
	s.shutdownTimer -= s.delta.Seconds()
	if s.shutdownTimer <= 0 {
		s.Running = false
	}
}

// clampDelta limits long frames (e.g. after a stall) to MaxDeltaTime.
func clampDelta(d time.Duration) time.Duration {
	if d > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	if d < 0 {
		return 0
	}
	return d
}
