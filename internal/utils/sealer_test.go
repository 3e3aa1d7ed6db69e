package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSealKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestTokenSealer_RoundTrip(t *testing.T) {
	s, err := NewTokenSealer(testSealKey)
	require.NoError(t, err)

	sealed, err := s.Seal("access-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "access-token")

	again, err := s.Seal("access-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "every seal uses a fresh nonce")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "access-token", plain)
}

func TestTokenSealer_EmptyValue(t *testing.T) {
	s, err := NewTokenSealer(testSealKey)
	require.NoError(t, err)

	sealed, err := s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	plain, err := s.Open("")
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestTokenSealer_WrongKey(t *testing.T) {
	a, err := NewTokenSealer(testSealKey)
	require.NoError(t, err)
	b, err := NewTokenSealer(strings.Repeat("ff", 32))
	require.NoError(t, err)

	sealed, err := a.Seal("secret")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, ErrSealedValueInvalid)

	_, err = a.Open("not base64!")
	assert.ErrorIs(t, err, ErrSealedValueInvalid)
}

func TestNewTokenSealer_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "not hex", key: "zz"},
		{name: "too short", key: "0011"},
		{name: "empty", key: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenSealer(tt.key)
			assert.Error(t, err)
		})
	}
}
