package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashCodec_RoundTrip(t *testing.T) {
	codec := NewFlashCodec([]byte("secret"), "flash", false)

	val, err := codec.Encode(Flash{Level: FlashSuccess, Message: "Quote submitted successfully!"})
	require.NoError(t, err)

	got, err := codec.Decode(val)
	require.NoError(t, err)
	assert.Equal(t, FlashSuccess, got.Level)
	assert.Equal(t, "Quote submitted successfully!", got.Message)
}

func TestFlashCodec_RejectsTamperedPayload(t *testing.T) {
	codec := NewFlashCodec([]byte("secret"), "flash", false)

	val, err := codec.Encode(Flash{Level: FlashError, Message: "nope"})
	require.NoError(t, err)

	parts := strings.SplitN(val, ".", 2)
	tampered := "x" + parts[0][1:] + "." + parts[1]
	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidFlash)
}

func TestFlashCodec_RejectsWrongSecret(t *testing.T) {
	codec := NewFlashCodec([]byte("secret"), "flash", false)
	other := NewFlashCodec([]byte("different"), "flash", false)

	val, err := codec.Encode(Flash{Level: FlashWarning, Message: "hm"})
	require.NoError(t, err)

	_, err = other.Decode(val)
	assert.ErrorIs(t, err, ErrInvalidFlash)
}

func TestFlashCodec_RejectsGarbage(t *testing.T) {
	codec := NewFlashCodec([]byte("secret"), "flash", false)
	_, err := codec.Decode("not-a-flash")
	assert.ErrorIs(t, err, ErrInvalidFlash)
}
