package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		to      State
		wantErr bool
	}{
		{"login starts", Unauthenticated, Authenticating, false},
		{"login succeeds", Authenticating, Authenticated, false},
		{"login fails", Authenticating, Unauthenticated, false},
		{"401 starts refresh", Authenticated, Refreshing, false},
		{"refresh succeeds", Refreshing, Authenticated, false},
		{"refresh fails", Refreshing, Unauthenticated, false},
		{"relogin", Authenticated, Authenticating, false},
		{"logout", Authenticated, Unauthenticated, false},
		{"refresh without session", Unauthenticated, Refreshing, true},
		{"authenticated without login", Unauthenticated, Authenticated, true},
		{"refresh during login", Authenticating, Refreshing, true},
		{"login during refresh", Refreshing, Authenticating, true},
		{"double refresh", Refreshing, Refreshing, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.from, nil)
			err := s.Transition(context.Background(), tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, s.State())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, s.State())
		})
	}
}

func TestSession_JoinedRefreshEndsWithLast(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Authenticated, nil)

	s.beginRefresh(ctx)
	s.beginRefresh(ctx)

	s.endRefresh(ctx, true)
	assert.Equal(t, Refreshing, s.State())

	s.endRefresh(ctx, true)
	assert.Equal(t, Authenticated, s.State())
}

func TestSession_RefreshStartsFromAnyState(t *testing.T) {
	for _, from := range []State{Unauthenticated, Authenticating, Authenticated, Refreshing} {
		t.Run(from.String(), func(t *testing.T) {
			ctx := context.Background()
			s := NewSession(from, nil)

			s.beginRefresh(ctx)
			assert.Equal(t, Refreshing, s.State())

			s.endRefresh(ctx, true)
			assert.Equal(t, Authenticated, s.State())
		})
	}
}

func TestSession_FailedRefreshEndsSession(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Authenticated, nil)

	s.beginRefresh(ctx)
	s.endRefresh(ctx, false)
	assert.Equal(t, Unauthenticated, s.State())
}

func TestSession_SuccessAfterConcurrentFailureAuthenticates(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Authenticated, nil)

	s.beginRefresh(ctx)
	s.beginRefresh(ctx)
	s.endRefresh(ctx, false)
	assert.Equal(t, Unauthenticated, s.State())

	s.endRefresh(ctx, true)
	assert.Equal(t, Authenticated, s.State())

	// The counter was reset by the failure and a new refresh starts clean.
	s.beginRefresh(ctx)
	s.endRefresh(ctx, true)
	assert.Equal(t, Authenticated, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "refreshing", Refreshing.String())
	assert.Equal(t, "state(9)", State(9).String())
}
