package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ju4700/Complete-The-Dictionary/internal/users"
)

func TestTokenRoundTrip(t *testing.T) {
	u := &users.User{ID: 42, Username: "alice", Role: users.RoleAdmin}

	tok, err := GenerateToken(u)
	require.NoError(t, err)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "42", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	require.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	u := &users.User{ID: 1, Username: "bob", Role: users.RoleUser}
	tok, err := GenerateToken(u)
	require.NoError(t, err)

	Configure("a-different-secret", 24)
	t.Cleanup(func() { Configure("your_secret_key", 24) })

	_, err = ParseToken(tok)
	require.Error(t, err)
}
