package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface is an addressable raster canvas that can be drawn into and
// subsequently serialized. Both implementations expose the identical
// contract; NewSurface picks one from the runtime capabilities.
type Surface interface {
	// Fill floods the entire surface with an opaque color. Used only when
	// the encode target cannot represent transparency.
	Fill(c color.Color)

	// DrawRegion samples srcRect from src and writes it scaled over the
	// full surface, compositing onto whatever Fill left beneath.
	DrawRegion(src image.Image, srcRect image.Rectangle)

	// Image returns the rendered raster for serialization.
	Image() image.Image
}

// NewSurface creates a surface of the given output dimensions, selecting
// Lanczos resampling when the runtime reports a high quality scaler and
// linear resampling otherwise.
func NewSurface(caps Capabilities, width, height int) Surface {
	if caps.HighQualityScaler {
		return &lanczosSurface{dst: imaging.New(width, height, color.Transparent)}
	}
	return &linearSurface{dst: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// lanczosSurface renders through disintegration/imaging.
type lanczosSurface struct {
	dst *image.NRGBA
}

func (s *lanczosSurface) Fill(c color.Color) {
	b := s.dst.Bounds()
	s.dst = imaging.New(b.Dx(), b.Dy(), c)
}

func (s *lanczosSurface) DrawRegion(src image.Image, srcRect image.Rectangle) {
	b := s.dst.Bounds()
	sampled := imaging.Crop(src, srcRect)
	scaled := imaging.Resize(sampled, b.Dx(), b.Dy(), imaging.Lanczos)
	s.dst = imaging.Overlay(s.dst, scaled, image.Point{}, 1.0)
}

func (s *lanczosSurface) Image() image.Image { return s.dst }

// linearSurface renders through bild/transform.
type linearSurface struct {
	dst *image.RGBA
}

func (s *linearSurface) Fill(c color.Color) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *linearSurface) DrawRegion(src image.Image, srcRect image.Rectangle) {
	b := s.dst.Bounds()
	sampled := transform.Crop(src, srcRect)
	scaled := transform.Resize(sampled, b.Dx(), b.Dy(), transform.Linear)
	draw.Draw(s.dst, b, scaled, image.Point{}, draw.Over)
}

func (s *linearSurface) Image() image.Image { return s.dst }

// Serialize encodes a rendered raster as a self-describing payload at the
// requested media type. Quality in [0.1, 1] is honored for jpeg and webp and
// ignored for png; callers are expected to clamp the mime first (see
// ClampMime) — anything other than jpeg or webp encodes as png.
func Serialize(img image.Image, mime string, quality float64) (string, error) {
	var buf bytes.Buffer
	var err error

	switch mime {
	case "image/jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{
			Quality: int(math.Round(quality * 100)),
		})
	case "image/webp":
		err = webp.Encode(&buf, img, &webp.Options{
			Quality: float32(quality * 100),
		})
	default:
		mime = "image/png"
		err = png.Encode(&buf, img)
	}

	if err != nil {
		return "", &EncodeError{Mime: mime, Err: err}
	}

	return EncodePayload(mime, buf.Bytes()), nil
}

// ParseBackground turns a hex color string into an opaque color for
// compositing. Unparseable strings fall back to opaque white rather than
// failing the conversion.
func ParseBackground(s string) color.Color {
	if s == "" {
		s = DefaultBackground
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.White
	}
	return c
}
