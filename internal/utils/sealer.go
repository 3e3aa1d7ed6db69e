package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealKeySize   = 32
	sealNonceSize = 24
)

// ErrSealedValueInvalid is returned when a sealed value cannot be authenticated with the key.
var ErrSealedValueInvalid = errors.New("sealed value is invalid or was sealed with a different key")

// TokenSealer encrypts provider tokens at rest using NaCl secretbox.
// Sealed values are base64(nonce || box).
type TokenSealer struct {
	key [sealKeySize]byte
}

// NewTokenSealer creates a sealer from a hex encoded 32 byte key.
func NewTokenSealer(hexKey string) (*TokenSealer, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("credential encryption key is not valid hex: %w", err)
	}
	if len(raw) != sealKeySize {
		return nil, fmt.Errorf("credential encryption key must be %d bytes, got %d", sealKeySize, len(raw))
	}
	s := &TokenSealer{}
	copy(s.key[:], raw)
	return s, nil
}

// Seal encrypts plaintext under a fresh random nonce. An empty plaintext seals to "".
func (s *TokenSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to read random nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

// Open decrypts a value produced by Seal.
func (s *TokenSealer) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSealedValueInvalid, err)
	}
	if len(raw) < sealNonceSize+secretbox.Overhead {
		return "", ErrSealedValueInvalid
	}
	var nonce [sealNonceSize]byte
	copy(nonce[:], raw[:sealNonceSize])
	plain, ok := secretbox.Open(nil, raw[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrSealedValueInvalid
	}
	return string(plain), nil
}
