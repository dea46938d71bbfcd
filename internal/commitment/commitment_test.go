package commitment

import (
	"testing"

	"github.com/KirkDiggler/duelarena/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestIsDeterministic(t *testing.T) {
	secret, err := ParseSecret("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	d1 := Digest(models.MoveSword, secret)
	d2 := Digest(models.MoveSword, secret)

	assert.Len(t, d1, DigestSize)
	assert.Equal(t, d1, d2)
}

func TestDigestBindsMoveAndSecret(t *testing.T) {
	secret, err := NewSecret()
	require.NoError(t, err)

	other, err := NewSecret()
	require.NoError(t, err)
	require.NotEqual(t, secret, other)

	d := Digest(models.MoveSword, secret)

	// A different move or a different secret must not open the digest
	assert.NotEqual(t, d, Digest(models.MoveShield, secret))
	assert.NotEqual(t, d, Digest(models.MoveMagic, secret))
	assert.NotEqual(t, d, Digest(models.MoveSword, other))
}

func TestVerify(t *testing.T) {
	secret, err := NewSecret()
	require.NoError(t, err)

	d := Digest(models.MoveMagic, secret)

	assert.True(t, Verify(d, models.MoveMagic, secret))

	// Committing to one move and revealing another must fail
	assert.False(t, Verify(d, models.MoveSword, secret))
	assert.False(t, Verify(d, models.MoveShield, secret))

	// Wrong secret must fail even with the right move
	other, err := NewSecret()
	require.NoError(t, err)
	assert.False(t, Verify(d, models.MoveMagic, other))

	// Truncated or empty digests never verify
	assert.False(t, Verify(d[:16], models.MoveMagic, secret))
	assert.False(t, Verify(nil, models.MoveMagic, secret))
}

func TestParseSecret(t *testing.T) {
	secret, err := NewSecret()
	require.NoError(t, err)

	parsed, err := ParseSecret(secret.String())
	require.NoError(t, err)
	assert.Equal(t, secret, parsed)

	_, err = ParseSecret("not hex")
	assert.ErrorIs(t, err, ErrBadSecret)

	_, err = ParseSecret("abcd")
	assert.ErrorIs(t, err, ErrBadSecret)

	_, err = ParseSecret("000102030405060708090a0b0c0d0e0f00")
	assert.ErrorIs(t, err, ErrBadSecret)
}

func TestNewSecretIsRandom(t *testing.T) {
	seen := make(map[Secret]bool)
	for i := 0; i < 32; i++ {
		s, err := NewSecret()
		require.NoError(t, err)
		assert.False(t, seen[s])
		seen[s] = true
	}
}
