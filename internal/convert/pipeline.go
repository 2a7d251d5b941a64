package convert

import "image"

// Converter runs conversions. It holds no mutable state and is safe for
// concurrent use; capabilities are fixed at construction so every call makes
// the same surface and decode path selections.
type Converter struct {
	caps Capabilities
	dec  *Decoder
}

// New creates a converter with explicit capabilities.
func New(caps Capabilities) *Converter {
	return &Converter{
		caps: caps,
		dec:  NewDecoder(caps),
	}
}

// NewDefault creates a converter with capabilities probed from the runtime.
func NewDefault() *Converter {
	return New(DetectCapabilities())
}

// Convert decodes, optionally resizes, and re-encodes the input according to
// opts, returning the encoded payload plus metadata. Two short-circuit exits
// skip the render pass entirely: SVG sources with no raster transform
// requested, and raw image passthrough when neither resizing nor a format
// change is needed. Errors are *DecodeError or *EncodeError.
func (c *Converter) Convert(in Input, opts Options) (*Result, error) {
	mime := ResolveMime(in.Mime, opts.TargetFormat)

	// SVG is an opaque text format under passthrough semantics: never
	// decoded unless a raster format is explicitly requested.
	if isSVGMime(in.Mime) && (isPassthrough(opts.TargetFormat) || opts.TargetFormat == FormatSVG) {
		return passthroughResult(in, mime), nil
	}

	// Raw passthrough: no format change was requested and no resize is
	// needed, so a decode/encode round trip would only cost quality.
	if isPassthrough(opts.TargetFormat) && isImageMime(in.Mime) && !needsResize(opts.Resize) {
		return passthroughResult(in, mime), nil
	}

	return c.render(in, opts, mime)
}

// render is the full decode/resize/encode path.
func (c *Converter) render(in Input, opts Options, mime string) (*Result, error) {
	img, err := c.dec.Decode(in.Data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	maxW, maxH := 0, 0
	fit := FitContain
	if opts.Resize != nil {
		maxW, maxH = opts.Resize.MaxWidth, opts.Resize.MaxHeight
		if opts.Resize.Fit != "" {
			fit = opts.Resize.Fit
		}
	}
	geo := ComputeGeometry(bounds.Dx(), bounds.Dy(), maxW, maxH, fit)

	clamped := ClampMime(mime)
	surface := NewSurface(c.caps, geo.Width, geo.Height)

	// jpeg cannot represent transparency; composite onto the requested
	// background instead of letting the encoder flatten to black.
	if clamped == "image/jpeg" {
		surface.Fill(ParseBackground(opts.Background))
	}

	srcRect := image.Rect(
		bounds.Min.X+geo.SX,
		bounds.Min.Y+geo.SY,
		bounds.Min.X+geo.SX+geo.SW,
		bounds.Min.Y+geo.SY+geo.SH,
	)
	surface.DrawRegion(img, srcRect)

	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}

	payload, err := Serialize(surface.Image(), clamped, quality)
	if err != nil {
		return nil, err
	}

	return &Result{
		Payload:   payload,
		Mime:      clamped,
		SizeBytes: EstimateBytes(payload),
		Width:     geo.Width,
		Height:    geo.Height,
		FileName:  in.FileName,
	}, nil
}

func passthroughResult(in Input, mime string) *Result {
	payload := EncodePayload(mime, in.Data)
	return &Result{
		Payload:   payload,
		Mime:      mime,
		SizeBytes: EstimateBytes(payload),
		FileName:  in.FileName,
	}
}

func needsResize(r *ResizeOptions) bool {
	return r != nil && (r.MaxWidth > 0 || r.MaxHeight > 0)
}
