// Package input turns raw terminal bytes into the discrete intents the
// command layer consumes.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/arena/internal/physics"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Held keys stay true for
// keyHoldDuration after their last repeat; the *Pressed fields are edges and
// are only true on the frame the key arrived.
type Input struct {
	Up, Down, Left, Right             bool // Movement (wasd, arrows)
	AimUp, AimDown, AimLeft, AimRight bool // Aim (ijkl)
	Fire                              bool // Space

	BurstPressed   bool // e
	PausePressed   bool // p, esc
	RestartPressed bool // r
	UndoPressed    bool // z
	EnterPressed   bool
	Quit           bool // q, ctrl-c

	Closed  bool // The byte source is gone
	Pressed []byte
}

// MoveDir returns the requested movement direction, not normalized.
func (in Input) MoveDir() physics.Vec2 {
	return axis(in.Left, in.Right, in.Up, in.Down)
}

// AimDir returns the requested aim direction, or zero when no aim key is
// held.
func (in Input) AimDir() physics.Vec2 {
	return axis(in.AimLeft, in.AimRight, in.AimUp, in.AimDown)
}

// Active reports whether any key arrived this frame.
func (in Input) Active() bool {
	return len(in.Pressed) > 0
}

func axis(left, right, up, down bool) physics.Vec2 {
	var v physics.Vec2
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y-- // Screen Y grows downward
	}
	if down {
		v.Y++
	}
	return v
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up, down, left, right             time.Time
	aimUp, aimDown, aimLeft, aimRight time.Time
	fire                              time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, now)
}

// parse updates held-key timestamps from buf and builds the frame's Input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Closed: s.closed, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByte(&s.state, &in, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	in.Up = held(s.state.up)
	in.Down = held(s.state.down)
	in.Left = held(s.state.left)
	in.Right = held(s.state.right)
	in.AimUp = held(s.state.aimUp)
	in.AimDown = held(s.state.aimDown)
	in.AimLeft = held(s.state.aimLeft)
	in.AimRight = held(s.state.aimRight)
	in.Fire = held(s.state.fire)
	return in
}

// applyByte records a single key: held keys update their timestamp, edge
// keys set their flag on in.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'i', 'I':
		state.aimUp = now
	case 'k', 'K':
		state.aimDown = now
	case 'j', 'J':
		state.aimLeft = now
	case 'l', 'L':
		state.aimRight = now
	case ' ':
		state.fire = now
	case 'e', 'E':
		in.BurstPressed = true
	case 'p', 'P', '\x1b':
		in.PausePressed = true
	case 'r', 'R':
		in.RestartPressed = true
	case 'z', 'Z':
		in.UndoPressed = true
	case '\n', '\r':
		in.EnterPressed = true
	case 'q', 'Q', '\x03':
		in.Quit = true
	}
}
