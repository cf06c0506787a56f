package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := issueToken(secret, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := parseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := issueToken("right-secret", uuid.New())
	require.NoError(t, err)

	_, err = parseToken("wrong-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := parseToken("secret", "not.a.token")
	assert.Error(t, err)
}
