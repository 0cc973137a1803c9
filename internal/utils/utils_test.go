package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestToken_RoundTrip(t *testing.T) {
	tok, err := NewToken(testSecret, "user-1", PurposeSession, 24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), tok.Exp, time.Minute)

	claims, err := ParseToken(testSecret, tok.Token, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
}

func TestToken_Expired(t *testing.T) {
	tok, err := NewToken(testSecret, "user-1", PurposeSession, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tok.Token, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestToken_WrongSecret(t *testing.T) {
	tok, err := NewToken(testSecret, "user-1", PurposeSession, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", tok.Token, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestToken_Tampered(t *testing.T) {
	tok, err := NewToken(testSecret, "user-1", PurposeSession, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok.Token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "AA"
	_, err = ParseToken(testSecret, strings.Join(parts, "."), PurposeSession)
	assert.Error(t, err)

	_, err = ParseToken(testSecret, "not-a-token", PurposeSession)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestToken_PurposeIsEnforced(t *testing.T) {
	tok, err := NewToken(testSecret, "user-1", PurposeVerify, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tok.Token, PurposeSession)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	_, err = ParseToken(testSecret, tok.Token, PurposeVerify)
	assert.NoError(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter3"))

	other, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	_, err = HashPassword("x", 99)
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	h, err := RandomHex(16)
	require.NoError(t, err)
	assert.Len(t, h, 32)

	code, err := RandomCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}
}
