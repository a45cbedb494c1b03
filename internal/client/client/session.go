package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/nuroki/internal/logging"
)

// State is the authentication state of a client session.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Refreshing
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Refreshing:
		return "refreshing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Transitions other than "any -> Unauthenticated", which is always allowed.
var transitions = map[State]map[State]bool{
	Unauthenticated: {Authenticating: true},
	Authenticating:  {Authenticated: true},
	Authenticated:   {Refreshing: true, Authenticating: true},
	Refreshing:      {Authenticated: true},
}

// Session is the authentication state machine shared by all requests of an
// HTTPClient.
type Session struct {
	mu         sync.Mutex
	state      State
	refreshers int
	log        logging.Logger
}

func NewSession(initial State, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{state: initial, log: log}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transition moves the session to the given state or returns
// ErrInvalidTransition.
func (s *Session) Transition(ctx context.Context, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(ctx, to)
}

func (s *Session) transitionLocked(ctx context.Context, to State) error {
	from := s.state
	if to != Unauthenticated && !transitions[from][to] {
		s.log.Warn(ctx, "rejected session transition", "from", from.String(), "to", to.String())
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	s.setLocked(ctx, to)
	return nil
}

// beginRefresh enters Refreshing from any state. The caller already holds a
// refresh token, so the token store decides whether a refresh may run, not
// the current state. Concurrent refreshes (the uncoalesced mode) are counted.
func (s *Session) beginRefresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshers++
	s.setLocked(ctx, Refreshing)
}

// endRefresh records the outcome of one refresh. A failure ends the session
// immediately. A success means a fresh pair is stored, so it lands in
// Authenticated even after a concurrent failure, unless other refreshes are
// still running.
func (s *Session) endRefresh(ctx context.Context, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refreshers > 0 {
		s.refreshers--
	}
	if !ok {
		s.setLocked(ctx, Unauthenticated)
		return
	}
	if s.refreshers == 0 || s.state != Refreshing {
		s.setLocked(ctx, Authenticated)
	}
}

// setLocked moves to the given state without consulting the transition table.
func (s *Session) setLocked(ctx context.Context, to State) {
	from := s.state
	s.state = to
	if to == Unauthenticated {
		s.refreshers = 0
	}
	if from != to {
		s.log.Debug(ctx, "session transition", "from", from.String(), "to", to.String())
	}
}
