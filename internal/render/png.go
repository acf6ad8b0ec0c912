package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
)

var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// EncodePNG writes img as an RGBA PNG. Output depends only on pixel data.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGBytes is EncodePNG into memory.
func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
