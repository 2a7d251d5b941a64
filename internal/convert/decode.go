package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/chai2010/webp"
)

// Decoder turns raw input bytes into an in-memory raster image.
//
// The primary path is a direct bitmap decode over the registered format set
// (PNG, JPEG, GIF, WebP, BMP, TIFF). When that fails and the fallback
// capability is present, the bytes are staged into a temporary file and run
// through per-format decoders; the temporary file is removed on every exit
// path. If the fallback is unavailable or also fails, the primary decode
// error propagates unchanged as a *DecodeError.
type Decoder struct {
	caps Capabilities
}

// NewDecoder creates a decoder with the given capabilities.
func NewDecoder(caps Capabilities) *Decoder {
	return &Decoder{caps: caps}
}

// Decode interprets data as an image.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	if d.caps.FallbackDecode {
		if img, ferr := decodeViaTempFile(data); ferr == nil {
			return img, nil
		}
	}

	return nil, &DecodeError{Err: err}
}

// decodeViaTempFile stages the bytes into a temporary file and decodes from
// it. The file is a scoped resource: it is removed before return on success
// and on every failure path.
func decodeViaTempFile(data []byte) (image.Image, error) {
	tmp, err := os.CreateTemp("", "imgpipe-decode-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return decodeFile(tmp.Name())
}

// decodeFile tries each known per-format decoder against the file in turn.
// The chai2010 webp decoder goes first: it accepts WebP variants the
// registry decoder rejects.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open temp file: %w", err)
	}
	defer f.Close()

	decoders := []func(io.Reader) (image.Image, error){
		webp.Decode,
		png.Decode,
		jpeg.Decode,
		gif.Decode,
	}

	for _, decode := range decoders {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind temp file: %w", err)
		}
		if img, err := decode(f); err == nil {
			return img, nil
		}
	}

	return nil, fmt.Errorf("no decoder accepted the input")
}
