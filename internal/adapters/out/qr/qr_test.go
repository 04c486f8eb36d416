package qr_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"eats/internal/adapters/out/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_PNG(t *testing.T) {
	data, err := qr.NewEncoder(128).PNG("https://eats.test/restaurants/42")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestEncoder_DefaultSize(t *testing.T) {
	data, err := qr.NewEncoder(0).PNG("menu")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, qr.DefaultSize, img.Bounds().Dx())
}

func TestEncoder_TooLong(t *testing.T) {
	_, err := qr.NewEncoder(64).PNG(strings.Repeat("x", 5000))
	require.Error(t, err)
}
