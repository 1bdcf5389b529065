package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	require.NoError(t, SetSecret("test-secret"))

	subject := uuid.NewString()
	token, err := GenerateToken(subject, false)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.False(t, claims.Admin)
}

func TestTokenCarriesAdminFlag(t *testing.T) {
	require.NoError(t, SetSecret("test-secret"))

	token, err := GenerateToken(uuid.NewString(), true)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestParseGarbageToken(t *testing.T) {
	require.NoError(t, SetSecret("test-secret"))

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenSignedWithOtherSecret(t *testing.T) {
	require.NoError(t, SetSecret("first-secret"))
	token, err := GenerateToken(uuid.NewString(), false)
	require.NoError(t, err)

	require.NoError(t, SetSecret("second-secret"))
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestEmptySecretRejected(t *testing.T) {
	assert.ErrorIs(t, SetSecret(""), ErrMissingSecret)
}
