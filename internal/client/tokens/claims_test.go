package tokens

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/nuroki/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mint(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_FirebaseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := mint(t, jwt.MapClaims{
		"user_id": "uid-1",
		"sub":     "ignored",
		"email":   "a@b.com",
		"iss":     "https://securetoken.google.com/nuroki",
		"exp":     exp.Unix(),
	})

	c, err := Inspect(tok)
	require.NoError(t, err)
	require.Equal(t, "uid-1", c.UserID)
	require.Equal(t, "a@b.com", c.Email)
	require.Equal(t, "https://securetoken.google.com/nuroki", c.Issuer)
	require.True(t, c.ExpiresAt.Equal(exp))
	require.False(t, c.Expired(time.Now()))
	require.True(t, c.Expired(exp.Add(time.Second)))
}

func TestInspect_SubjectFallback(t *testing.T) {
	c, err := Inspect(mint(t, jwt.MapClaims{"sub": "u-2"}))
	require.NoError(t, err)
	require.Equal(t, "u-2", c.UserID)
	require.False(t, c.Expired(time.Now()), "no exp never expires")
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("T1")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
