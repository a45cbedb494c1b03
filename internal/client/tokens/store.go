package tokens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/common"
	"github.com/dmitrijs2005/nuroki/internal/logging"
)

// Store is the token store of a session.
type Store struct {
	storage Storage
	log     logging.Logger
}

func NewStore(storage Storage, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{storage: storage, log: log.With("component", "tokens")}
}

// AccessToken returns the stored access token. ok is false when no token is
// stored or the storage could not be read.
func (s *Store) AccessToken(ctx context.Context) (string, bool) {
	return s.read(ctx, common.AccessTokenKey)
}

// RefreshToken returns the stored refresh token, with the same semantics as
// AccessToken.
func (s *Store) RefreshToken(ctx context.Context) (string, bool) {
	return s.read(ctx, common.RefreshTokenKey)
}

// Pair returns both tokens; ok reports whether an access token is present.
func (s *Store) Pair(ctx context.Context) (models.TokenPair, bool) {
	access, ok := s.AccessToken(ctx)
	refresh, _ := s.RefreshToken(ctx)
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, ok
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "token storage read failed", "key", key, "error", err)
		return "", false
	}
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// SaveTokens overwrites both values.
func (s *Store) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	values := map[string]string{
		common.AccessTokenKey:  accessToken,
		common.RefreshTokenKey: refreshToken,
	}

	if b, ok := s.storage.(BatchStorage); ok {
		if err := b.SetAll(ctx, values); err != nil {
			return fmt.Errorf("save tokens: %w", err)
		}
		return nil
	}

	for _, k := range []string{common.AccessTokenKey, common.RefreshTokenKey} {
		if err := s.storage.Set(ctx, k, values[k]); err != nil {
			return fmt.Errorf("save tokens: %w", err)
		}
	}
	return nil
}

// ClearTokens removes both values.
func (s *Store) ClearTokens(ctx context.Context) error {
	if b, ok := s.storage.(BatchStorage); ok {
		if err := b.RemoveAll(ctx, common.AccessTokenKey, common.RefreshTokenKey); err != nil {
			return fmt.Errorf("clear tokens: %w", err)
		}
		return nil
	}

	for _, k := range []string{common.AccessTokenKey, common.RefreshTokenKey} {
		if err := s.storage.Remove(ctx, k); err != nil {
			return fmt.Errorf("clear tokens: %w", err)
		}
	}
	return nil
}
