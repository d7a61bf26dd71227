// Package sealbox provides authenticated symmetric encryption for short
// strings, used to keep the checkout session handle opaque while it sits in
// a browser cookie.
//
// The wire format is base64(iv ∥ tag ∥ ciphertext) with AES-256-GCM, a fresh
// 12-byte IV per call and a 16-byte authentication tag.
package sealbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// KeySize is the required key length in bytes (AES-256).
	KeySize = 32

	ivSize  = 12
	tagSize = 16
)

// ErrInvalidPayload is returned by Open when the payload is malformed or the
// authentication tag does not verify. No distinction is made between the two;
// callers only need to know the value cannot be trusted.
var ErrInvalidPayload = errors.New("sealbox: invalid or tampered payload")

// Box seals and opens short strings with a fixed 256-bit key.
type Box struct {
	aead cipher.AEAD
}

// New creates a Box from a 32-byte key.
func New(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("sealbox: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("sealbox: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("sealbox: %w", err)
	}
	return &Box{aead: aead}, nil
}

// NewRandom creates a Box with a freshly generated key. Values sealed by it
// cannot be opened after a process restart.
func NewRandom() (*Box, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("sealbox: generating key: %w", err)
	}
	return New(key)
}

// Seal encrypts plaintext and returns base64(iv ∥ tag ∥ ciphertext).
// The IV is random per call and never reused.
func (b *Box) Seal(plaintext string) (string, error) {
	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("sealbox: generating iv: %w", err)
	}

	// Seal appends ciphertext∥tag; the cookie format wants iv∥tag∥ciphertext.
	sealed := b.aead.Seal(nil, iv, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	payload := make([]byte, 0, ivSize+tagSize+len(ct))
	payload = append(payload, iv...)
	payload = append(payload, tag...)
	payload = append(payload, ct...)
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Open decrypts a payload produced by Seal. It fails with ErrInvalidPayload
// on malformed input or tag mismatch and never returns partial plaintext.
func (b *Box) Open(payload string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidPayload
	}
	if len(raw) < ivSize+tagSize {
		return "", ErrInvalidPayload
	}

	iv := raw[:ivSize]
	tag := raw[ivSize : ivSize+tagSize]
	ct := raw[ivSize+tagSize:]

	sealed := make([]byte, 0, len(ct)+tagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plaintext, err := b.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrInvalidPayload
	}
	return string(plaintext), nil
}
