package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-sessions"

func TestTokenCodec_IssueVerifyRoundtrip(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	token, err := codec.Issue(Identity{ID: 42, Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, ok := codec.Verify(token)
	require.True(t, ok)
	assert.Equal(t, uint(42), identity.ID)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestTokenCodec_VerifyFailures(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	valid, err := codec.Issue(Identity{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	otherCodec := NewTokenCodec("a-different-secret")
	foreign, err := otherCodec.Issue(Identity{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	// Flip a character inside the signature segment.
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"Garbage", "not-a-token"},
		{"Wrong Secret", foreign},
		{"Tampered Signature", tampered},
		{"Truncated", valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, ok := codec.Verify(tt.token)
			assert.False(t, ok)
			assert.Nil(t, identity)
		})
	}
}

func TestTokenCodec_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	codec := NewTokenCodecWithClock(testSecret, func() time.Time { return clock })

	token, err := codec.Issue(Identity{ID: 7, Email: "bob@example.com"})
	require.NoError(t, err)

	// Still valid just before the 24h boundary.
	clock = issuedAt.Add(TokenValidity - time.Minute)
	_, ok := codec.Verify(token)
	assert.True(t, ok)

	// Rejected after the boundary.
	clock = issuedAt.Add(TokenValidity + time.Minute)
	identity, ok := codec.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, identity)
}

func TestTokenCodec_IssueWithoutSecret(t *testing.T) {
	codec := NewTokenCodec("")
	_, err := codec.Issue(Identity{ID: 1})
	assert.Error(t, err)
}

func TestTokenCodec_TokensAreUnique(t *testing.T) {
	codec := NewTokenCodec(testSecret)

	first, err := codec.Issue(Identity{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)
	second, err := codec.Issue(Identity{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	// The jti claim makes two tokens for the same identity distinct.
	assert.NotEqual(t, first, second)
}
