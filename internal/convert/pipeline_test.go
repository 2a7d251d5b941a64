package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

// nrgbaImage creates a solid-color in-memory image.
func nrgbaImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// patternImage creates an image with a distinct color per quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func patternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// pngBytes encodes a solid-color image as PNG.
func pngBytes(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgbaImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode png fixture: %v", err)
	}
	return buf.Bytes()
}

// jpegBytes encodes a solid-color image as JPEG.
func jpegBytes(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, nrgbaImage(width, height, c), nil); err != nil {
		t.Fatalf("failed to encode jpeg fixture: %v", err)
	}
	return buf.Bytes()
}

const svgFixture = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="red"/></svg>`

func testConverter() *Converter {
	return New(Capabilities{HighQualityScaler: true, FallbackDecode: true})
}

func TestConvert_SVGPassthrough(t *testing.T) {
	in := Input{Data: []byte(svgFixture), Mime: "image/svg+xml", FileName: "box.svg"}

	for _, target := range []Format{"", FormatOriginal, FormatBase64, FormatSVG} {
		t.Run(string(target), func(t *testing.T) {
			result, err := testConverter().Convert(in, Options{TargetFormat: target})
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}

			if result.Mime != "image/svg+xml" {
				t.Errorf("mime: got %s, want image/svg+xml", result.Mime)
			}
			if result.Width != 0 || result.Height != 0 {
				t.Errorf("passthrough should not report render dimensions, got %dx%d",
					result.Width, result.Height)
			}
			if result.FileName != "box.svg" {
				t.Errorf("file name: got %s, want box.svg", result.FileName)
			}

			decoded, err := DecodePayload(result.Payload)
			if err != nil {
				t.Fatalf("DecodePayload failed: %v", err)
			}
			if !bytes.Equal(decoded, []byte(svgFixture)) {
				t.Error("svg passthrough must be byte-identical")
			}
		})
	}
}

func TestConvert_SVGToRasterRenders(t *testing.T) {
	// An explicit raster target forces SVG through the decode path. SVG is
	// not decodable here, so the decode error must surface.
	in := Input{Data: []byte(svgFixture), Mime: "image/svg+xml"}

	_, err := testConverter().Convert(in, Options{TargetFormat: FormatPNG})
	if err == nil {
		t.Fatal("Convert should fail for svg through the raster path")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error type: got %T, want *DecodeError", err)
	}
}

func TestConvert_RawPassthrough(t *testing.T) {
	data := jpegBytes(t, 50, 40, color.NRGBA{200, 100, 50, 255})
	in := Input{Data: data, Mime: "image/jpeg", FileName: "photo.jpg"}

	for _, target := range []Format{"", FormatOriginal, FormatBase64} {
		t.Run(string(target), func(t *testing.T) {
			result, err := testConverter().Convert(in, Options{TargetFormat: target})
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}

			if result.Mime != "image/jpeg" {
				t.Errorf("mime: got %s, want image/jpeg", result.Mime)
			}
			if result.SizeBytes != len(data) {
				t.Errorf("size: got %d, want %d", result.SizeBytes, len(data))
			}
			if result.Width != 0 {
				t.Error("passthrough should not report render dimensions")
			}

			decoded, err := DecodePayload(result.Payload)
			if err != nil {
				t.Fatalf("DecodePayload failed: %v", err)
			}
			if !bytes.Equal(decoded, data) {
				t.Error("raw passthrough must be byte-identical")
			}
		})
	}
}

func TestConvert_PassthroughSkippedWhenResizing(t *testing.T) {
	data := pngBytes(t, 400, 200, color.NRGBA{10, 20, 30, 255})
	in := Input{Data: data, Mime: "image/png"}

	result, err := testConverter().Convert(in, Options{
		Resize: &ResizeOptions{MaxWidth: 100, MaxHeight: 100},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Width != 100 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", result.Width, result.Height)
	}
	if result.Mime != "image/png" {
		t.Errorf("mime: got %s, want image/png", result.Mime)
	}
}

func TestConvert_ContainResize(t *testing.T) {
	data := pngBytes(t, 400, 200, color.NRGBA{255, 0, 0, 255})
	in := Input{Data: data, Mime: "image/png", FileName: "wide.png"}

	result, err := testConverter().Convert(in, Options{
		TargetFormat: FormatPNG,
		Resize:       &ResizeOptions{MaxWidth: 100, MaxHeight: 100, Fit: FitContain},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Width != 100 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", result.Width, result.Height)
	}

	payload, err := DecodePayload(result.Payload)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("output did not decode: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("payload dimensions: got %dx%d, want 100x50",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
	if result.SizeBytes != len(payload) {
		t.Errorf("size: got %d, want %d", result.SizeBytes, len(payload))
	}
}

func TestConvert_CoverResize(t *testing.T) {
	data := pngBytes(t, 400, 200, color.NRGBA{0, 255, 0, 255})
	in := Input{Data: data, Mime: "image/png"}

	result, err := testConverter().Convert(in, Options{
		TargetFormat: FormatPNG,
		Resize:       &ResizeOptions{MaxWidth: 100, MaxHeight: 100, Fit: FitCover},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want exactly 100x100", result.Width, result.Height)
	}
}

func TestConvert_JPEGCompositesBackground(t *testing.T) {
	// Fully transparent source: the jpeg output must show the requested
	// background, not black.
	data := pngBytes(t, 40, 40, color.NRGBA{0, 0, 0, 0})
	in := Input{Data: data, Mime: "image/png"}

	result, err := testConverter().Convert(in, Options{
		TargetFormat: FormatJPEG,
		Background:   "#ff0000",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Mime != "image/jpeg" {
		t.Errorf("mime: got %s, want image/jpeg", result.Mime)
	}

	payload, err := DecodePayload(result.Payload)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("output did not decode: %v", err)
	}

	r, g, b, _ := img.At(20, 20).RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)
	// jpeg is lossy; allow a generous tolerance around pure red.
	if r8 < 220 || g8 > 40 || b8 > 40 {
		t.Errorf("background: got (%d,%d,%d), want ~(255,0,0)", r8, g8, b8)
	}
}

func TestConvert_ClampsRasterTargets(t *testing.T) {
	data := pngBytes(t, 20, 20, color.NRGBA{0, 0, 255, 255})
	in := Input{Data: data, Mime: "image/png"}

	// A raster render toward svg cannot be encoded as svg; it clamps to png.
	result, err := testConverter().Convert(in, Options{TargetFormat: FormatSVG})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Mime != "image/png" {
		t.Errorf("mime: got %s, want image/png", result.Mime)
	}
	if !strings.HasPrefix(result.Payload, "data:image/png;base64,") {
		t.Errorf("payload prefix: got %.40s", result.Payload)
	}
}

func TestConvert_WebP(t *testing.T) {
	data := pngBytes(t, 30, 30, color.NRGBA{120, 130, 140, 255})
	in := Input{Data: data, Mime: "image/png"}

	result, err := testConverter().Convert(in, Options{TargetFormat: FormatWebP})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Mime != "image/webp" {
		t.Errorf("mime: got %s, want image/webp", result.Mime)
	}
	if result.Width != 30 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 30x30", result.Width, result.Height)
	}
}

func TestConvert_DecodeErrorPropagates(t *testing.T) {
	in := Input{Data: []byte("not an image"), Mime: "image/png"}

	_, err := testConverter().Convert(in, Options{TargetFormat: FormatPNG})
	if err == nil {
		t.Fatal("Convert should fail for undecodable input")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error type: got %T, want *DecodeError", err)
	}
}

func TestConvert_LinearSurfacePath(t *testing.T) {
	conv := New(Capabilities{HighQualityScaler: false, FallbackDecode: false})
	data := pngBytes(t, 200, 100, color.NRGBA{255, 0, 0, 255})

	result, err := conv.Convert(Input{Data: data, Mime: "image/png"}, Options{
		TargetFormat: FormatPNG,
		Resize:       &ResizeOptions{MaxWidth: 50},
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Width != 50 || result.Height != 25 {
		t.Errorf("dimensions: got %dx%d, want 50x25", result.Width, result.Height)
	}
}

func TestConvert_ConcurrentCalls(t *testing.T) {
	conv := testConverter()
	data := pngBytes(t, 100, 100, color.NRGBA{1, 2, 3, 255})

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := conv.Convert(Input{Data: data, Mime: "image/png"}, Options{
				TargetFormat: FormatJPEG,
				Resize:       &ResizeOptions{MaxWidth: 40, MaxHeight: 40, Fit: FitCover},
			})
			done <- err
		}()
	}

	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent conversion %d failed: %v", i, err)
		}
	}
}
