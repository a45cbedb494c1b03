package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/nuroki/internal/client/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type op struct {
	clear   bool
	access  string
	refresh string
}

func storages(t *testing.T) map[string]func(t *testing.T) Storage {
	t.Helper()
	return map[string]func(t *testing.T) Storage{
		"memory": func(t *testing.T) Storage { return NewMemoryStorage() },
		"sqlite": func(t *testing.T) Storage {
			db, err := database.Open(context.Background(), ":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })
			return NewSQLStorage(db)
		},
	}
}

func TestStore_ReflectsLastSaveOrClear(t *testing.T) {
	sequences := [][]op{
		{{access: "T1", refresh: "R1"}},
		{{access: "T1", refresh: "R1"}, {access: "T2", refresh: "R2"}},
		{{access: "T1", refresh: "R1"}, {clear: true}},
		{{clear: true}, {access: "T3", refresh: "R3"}},
		{{access: "T1", refresh: "R1"}, {clear: true}, {access: "T4", refresh: "R4"}, {clear: true}},
		{{clear: true}, {clear: true}},
	}

	for name, newStorage := range storages(t) {
		t.Run(name, func(t *testing.T) {
			for _, seq := range sequences {
				s := NewStore(newStorage(t), nil)
				ctx := context.Background()

				var wantAccess, wantRefresh string
				for _, o := range seq {
					if o.clear {
						require.NoError(t, s.ClearTokens(ctx))
						wantAccess, wantRefresh = "", ""
						continue
					}
					require.NoError(t, s.SaveTokens(ctx, o.access, o.refresh))
					wantAccess, wantRefresh = o.access, o.refresh
				}

				access, ok := s.AccessToken(ctx)
				assert.Equal(t, wantAccess != "", ok)
				assert.Equal(t, wantAccess, access)

				refresh, ok := s.RefreshToken(ctx)
				assert.Equal(t, wantRefresh != "", ok)
				assert.Equal(t, wantRefresh, refresh)
			}
		})
	}
}

func TestStore_Pair(t *testing.T) {
	s := NewStore(NewMemoryStorage(), nil)
	ctx := context.Background()

	_, ok := s.Pair(ctx)
	require.False(t, ok)

	require.NoError(t, s.SaveTokens(ctx, "T1", "R1"))
	p, ok := s.Pair(ctx)
	require.True(t, ok)
	require.Equal(t, "T1", p.AccessToken)
	require.Equal(t, "R1", p.RefreshToken)
}

func TestStore_UsesFixedKeys(t *testing.T) {
	st := NewMemoryStorage()
	s := NewStore(st, nil)
	ctx := context.Background()

	require.NoError(t, s.SaveTokens(ctx, "T1", "R1"))

	v, ok, _ := st.Get(ctx, "token")
	require.True(t, ok)
	require.Equal(t, "T1", v)
	v, ok, _ = st.Get(ctx, "refreshToken")
	require.True(t, ok)
	require.Equal(t, "R1", v)
}

// plainStorage hides the batch methods of MemoryStorage.
type plainStorage struct{ m *MemoryStorage }

func (p plainStorage) Get(ctx context.Context, k string) (string, bool, error) { return p.m.Get(ctx, k) }
func (p plainStorage) Set(ctx context.Context, k, v string) error           { return p.m.Set(ctx, k, v) }
func (p plainStorage) Remove(ctx context.Context, k string) error           { return p.m.Remove(ctx, k) }

func TestStore_NonBatchStorage(t *testing.T) {
	s := NewStore(plainStorage{NewMemoryStorage()}, nil)
	ctx := context.Background()

	require.NoError(t, s.SaveTokens(ctx, "T1", "R1"))
	v, ok := s.AccessToken(ctx)
	require.True(t, ok)
	require.Equal(t, "T1", v)

	require.NoError(t, s.ClearTokens(ctx))
	_, ok = s.RefreshToken(ctx)
	require.False(t, ok)
}

type brokenStorage struct{}

var errBroken = errors.New("disk on fire")

func (brokenStorage) Get(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (brokenStorage) Set(context.Context, string, string) error         { return errBroken }
func (brokenStorage) Remove(context.Context, string) error              { return errBroken }

func TestStore_StorageErrors(t *testing.T) {
	s := NewStore(brokenStorage{}, nil)
	ctx := context.Background()

	_, ok := s.AccessToken(ctx)
	assert.False(t, ok, "unreadable storage reads as absent")

	assert.ErrorIs(t, s.SaveTokens(ctx, "T", "R"), errBroken)
	assert.ErrorIs(t, s.ClearTokens(ctx), errBroken)
}

func TestSQLStorage_BatchIsAtomic(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := NewSQLStorage(db)
	ctx := context.Background()
	require.NoError(t, st.SetAll(ctx, map[string]string{"token": "T1", "refreshToken": "R1"}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, st.SetAll(cancelled, map[string]string{"token": "T2", "refreshToken": "R2"}))

	v, _, err := st.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "T1", v)
	v, _, err = st.Get(ctx, "refreshToken")
	require.NoError(t, err)
	require.Equal(t, "R1", v)
}
