package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	signer := NewTokenSigner("test-secret")
	token, exp, err := signer.GenerateToken(AdminSubject, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	sub, err := signer.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, sub)
}

func TestTokenRejectsOtherSecretAndExpiry(t *testing.T) {
	token, _, err := NewTokenSigner("a").GenerateToken(AdminSubject, time.Hour)
	require.NoError(t, err)
	_, err = NewTokenSigner("b").ExtractSubject(token)
	assert.Error(t, err)

	expired, _, err := NewTokenSigner("a").GenerateToken(AdminSubject, -time.Minute)
	require.NoError(t, err)
	_, err = NewTokenSigner("a").ExtractSubject(expired)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
