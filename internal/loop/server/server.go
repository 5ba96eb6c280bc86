package server

import (
	"context"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// GameServer is the interface clients use to talk to the host process.
// Every client runs its own session; the server only tracks who is
// connected, fans out host events and keeps the shared leaderboard.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportResult(clientID int, result Result)
	Leaderboard() *Leaderboard
	Players() int
}

// Server manages connected clients and the leaderboard.
type Server struct {
	logger       *log.Logger
	clients      map[int]*ClientHandle
	nextClientID int
	resultsCh    chan Result
	board        atomic.Pointer[Leaderboard]
	limit        int
	mu           sync.RWMutex
}

var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string
	EventsCh chan ClientEvent // Events sent to client
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// Result is the outcome of one finished session.
type Result struct {
	ClientID int
	Username string
	Score    int
	Elapsed  time.Duration
	Won      bool
}

// Leaderboard is an immutable, score-ordered view of the best results.
type Leaderboard struct {
	Entries []Result
}

// DefaultLeaderboardSize is the number of results kept.
const DefaultLeaderboardSize = 10

// NewServer creates a server. A nil logger discards output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		logger:       logger,
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		resultsCh:    make(chan Result, 64),
		limit:        DefaultLeaderboardSize,
	}
	s.board.Store(&Leaderboard{})
	return s
}

// Run folds reported results into the leaderboard. Blocks until the
// context is cancelled.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-s.resultsCh:
			s.record(r)
		}
	}
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to the given timeout. The caller should cancel the server context after
// Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "remaining", s.Players())
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.logger.Info("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client and closes its event channel. Unknown
// ids are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)
	s.logger.Info("client unregistered", "id", clientID, "players", len(s.clients))
}

// ReportResult queues a finished session for the leaderboard. Results are
// dropped when the queue is full.
func (s *Server) ReportResult(clientID int, result Result) {
	result.ClientID = clientID
	select {
	case s.resultsCh <- result:
	default:
		s.logger.Warn("result dropped", "id", clientID)
	}
}

// Leaderboard returns the current leaderboard snapshot.
func (s *Server) Leaderboard() *Leaderboard {
	return s.board.Load()
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) record(r Result) {
	prev := s.board.Load().Entries
	entries := make([]Result, 0, len(prev)+1)
	entries = append(entries, prev...)
	entries = append(entries, r)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Elapsed < entries[j].Elapsed
	})
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.board.Store(&Leaderboard{Entries: entries})
}
