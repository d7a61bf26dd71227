package sealbox_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/fige/storefront/pkg/sealbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(t *testing.T) *sealbox.Box {
	t.Helper()
	box, err := sealbox.New(bytes.Repeat([]byte{0x42}, sealbox.KeySize))
	require.NoError(t, err)
	return box
}

func TestNew_RejectsBadKeyLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := sealbox.New(make([]byte, n))
		assert.Error(t, err, "key length %d should be rejected", n)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	box := newBox(t)

	plaintexts := []string{
		"",
		"x",
		"cs_test_a1B2c3D4e5F6g7H8i9J0",
		"cs_live_b1M9zqwErTyUiOpAsDfGhJkLz",
		"1717171717171-9f8e7d6c",
		"~!@#$%^&*()_+-=[]{}|;':\",./<>?",
	}
	for _, pt := range plaintexts {
		sealed, err := box.Seal(pt)
		require.NoError(t, err)
		require.NotEmpty(t, sealed)

		got, err := box.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestSeal_FreshIVPerCall(t *testing.T) {
	box := newBox(t)

	a, err := box.Seal("cs_test_same_plaintext")
	require.NoError(t, err)
	b, err := box.Seal("cs_test_same_plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpen_TamperedByteFailsClosed(t *testing.T) {
	box := newBox(t)

	sealed, err := box.Seal("cs_test_a1B2c3D4e5F6g7H8i9J0")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)

	// Flipping any single byte of iv, tag, or ciphertext must fail
	// authentication; under no circumstance may wrong plaintext come back.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		got, err := box.Open(base64.StdEncoding.EncodeToString(tampered))
		assert.ErrorIs(t, err, sealbox.ErrInvalidPayload, "byte %d", i)
		assert.Empty(t, got, "byte %d", i)
	}
}

func TestOpen_MalformedPayloads(t *testing.T) {
	box := newBox(t)

	for _, payload := range []string{
		"",
		"not base64 at all!!",
		base64.StdEncoding.EncodeToString([]byte("short")),
		base64.StdEncoding.EncodeToString(make([]byte, 27)), // one short of iv+tag
	} {
		_, err := box.Open(payload)
		assert.ErrorIs(t, err, sealbox.ErrInvalidPayload, "payload %q", payload)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	box := newBox(t)
	other, err := sealbox.New(bytes.Repeat([]byte{0x24}, sealbox.KeySize))
	require.NoError(t, err)

	sealed, err := box.Seal("cs_test_a1B2c3D4e5F6g7H8i9J0")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, sealbox.ErrInvalidPayload)
}

func TestNewRandom_SealsAndOpens(t *testing.T) {
	box, err := sealbox.NewRandom()
	require.NoError(t, err)

	sealed, err := box.Seal("ephemeral")
	require.NoError(t, err)
	got, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ephemeral", got)

	// A second random box has a different key, so the value is unreadable.
	restarted, err := sealbox.NewRandom()
	require.NoError(t, err)
	_, err = restarted.Open(sealed)
	assert.ErrorIs(t, err, sealbox.ErrInvalidPayload)
}
