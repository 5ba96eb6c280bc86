package client

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/game"
	"github.com/tomz197/arena/internal/loop/server"
)

type fakeServer struct {
	mu      sync.Mutex
	handle  *server.ClientHandle
	gone    []int
	results []server.Result
}

func (f *fakeServer) RegisterClient(username string) *server.ClientHandle {
	f.handle = &server.ClientHandle{ID: 7, Username: username, EventsCh: make(chan server.ClientEvent, 4)}
	return f.handle
}

func (f *fakeServer) UnregisterClient(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gone = append(f.gone, id)
}

func (f *fakeServer) ReportResult(id int, r server.Result) {
	r.ClientID = id
	f.results = append(f.results, r)
}

func (f *fakeServer) Leaderboard() *server.Leaderboard { return &server.Leaderboard{} }
func (f *fakeServer) Players() int                     { return 1 }

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer, in string, out *bytes.Buffer) *Client {
	t.Helper()
	c, err := NewClient(gs, strings.NewReader(in), out, ClientOptions{
		Config:       config.Default(),
		TermSizeFunc: fixedSize(80, 24),
		Username:     "tester",
		Rand:         rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return c
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(80, 24)
	assert.Equal(t, []int{80, 24, 0, 0}, []int{w, h, col, row})

	w, h, col, row = clampTermSize(config.MaxTermWidth+20, config.MaxTermHeight+10)
	assert.Equal(t, config.MaxTermWidth, w)
	assert.Equal(t, config.MaxTermHeight, h)
	assert.Equal(t, 10, col)
	assert.Equal(t, 5, row)

	w, h, _, _ = clampTermSize(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestClampDelta(t *testing.T) {
	assert.Equal(t, config.MaxDeltaTime, clampDelta(time.Second))
	assert.Equal(t, 10*time.Millisecond, clampDelta(10*time.Millisecond))
	assert.Zero(t, clampDelta(-time.Millisecond))
}

func TestInactivity(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewClientState(start)

	s.trackActivity(false, start.Add((config.InactivityWarnUser+1)*time.Second))
	assert.True(t, s.isInactive)
	assert.True(t, s.Running)

	s.trackActivity(true, start.Add((config.InactivityWarnUser+2)*time.Second))
	assert.False(t, s.isInactive)

	s.trackActivity(false, start.Add((config.InactivityWarnUser+config.InactivityDisconnectUser+3)*time.Second))
	assert.False(t, s.Running)
}

func TestShutdownCountdown(t *testing.T) {
	s := NewClientState(time.Now())
	s.beginShutdown()
	require.True(t, s.ShuttingDown)

	s.delta = time.Duration(config.ShutdownDisplaySeconds*float64(time.Second)) / 2
	s.tickShutdown()
	assert.True(t, s.Running)

	s.beginShutdown()
	s.tickShutdown()
	assert.False(t, s.Running)
}

func TestRunQuitsOnKey(t *testing.T) {
	gs := &fakeServer{}
	var out bytes.Buffer
	c := newTestClient(t, gs, "q", &out)

	require.NoError(t, c.Run())
	assert.Equal(t, []int{7}, gs.gone)
	assert.NotEmpty(t, out.String())
}

func TestLocalPlayWithoutServer(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(t, nil, "", &out)

	require.NoError(t, c.Run())
	assert.Nil(t, c.handle)
}

func TestServerShutdownEvent(t *testing.T) {
	gs := &fakeServer{}
	var out bytes.Buffer
	c := newTestClient(t, gs, "", &out)

	gs.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	assert.True(t, c.state.ShuttingDown)

	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "SERVER SHUTTING DOWN")
}

func TestResultReportedOncePerSession(t *testing.T) {
	gs := &fakeServer{}
	var out bytes.Buffer
	c := newTestClient(t, gs, "", &out)

	c.reportResult()
	assert.Empty(t, gs.results)

	c.Session().Player().ApplyHealthDelta(-1000)
	require.Equal(t, game.StateGameOver, c.Session().State())

	c.reportResult()
	c.reportResult()
	require.Len(t, gs.results, 1)
	assert.Equal(t, 7, gs.results[0].ClientID)
	assert.Equal(t, "tester", gs.results[0].Username)
	assert.False(t, gs.results[0].Won)

	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "GAME OVER")
}
