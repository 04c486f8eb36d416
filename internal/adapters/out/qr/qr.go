// Package qr renders QR codes as PNG images.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the image width and height in pixels.
const DefaultSize = 256

type Encoder struct {
	size int
}

func NewEncoder(size int) Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return Encoder{size: size}
}

// PNG encodes content with medium error correction.
func (e Encoder) PNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, e.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
