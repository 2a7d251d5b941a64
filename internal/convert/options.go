package convert

// Format identifies a conversion target.
type Format string

const (
	// FormatBase64 requests the source bytes as a base64 data URL without
	// re-encoding.
	FormatBase64 Format = "base64"

	// FormatOriginal keeps the source format unchanged.
	FormatOriginal Format = "original"

	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
	FormatSVG  Format = "svg"
)

// Fit selects how an image is mapped into resize bounds.
type Fit string

const (
	// FitContain scales the image to fit entirely within the bounds,
	// preserving aspect ratio and never upscaling.
	FitContain Fit = "contain"

	// FitCover fills the bounds exactly, cropping the centered excess.
	FitCover Fit = "cover"
)

const (
	// DefaultQuality is applied to lossy encodings when no quality is given.
	DefaultQuality = 0.92

	// DefaultBackground is the compositing color for opaque-only targets.
	DefaultBackground = "#ffffff"
)

// ResizeOptions bounds the output dimensions. A zero bound never constrains.
type ResizeOptions struct {
	// MaxWidth is the maximum output width in pixels. 0 means unset.
	MaxWidth int `json:"max_width,omitempty"`

	// MaxHeight is the maximum output height in pixels. 0 means unset.
	MaxHeight int `json:"max_height,omitempty"`

	// Fit is the mapping mode, "contain" or "cover". Empty means contain.
	Fit Fit `json:"fit,omitempty"`
}

// Options configures a single conversion. The zero value is a plain
// passthrough. Options is read-only to the pipeline; quality outside
// [0.1, 1] or negative bounds are undefined input and must be constrained
// by the caller.
type Options struct {
	// TargetFormat is the requested output format. Empty, "original" and
	// "base64" all mean passthrough of the source format.
	TargetFormat Format `json:"target_format,omitempty"`

	// Quality in [0.1, 1] applies to jpeg and webp encoding only.
	// 0 means DefaultQuality.
	Quality float64 `json:"quality,omitempty"`

	// Resize bounds the output dimensions. Nil means no resizing.
	Resize *ResizeOptions `json:"resize,omitempty"`

	// Background is a hex color string composited beneath transparent
	// pixels when encoding to jpeg. Empty means DefaultBackground.
	Background string `json:"background,omitempty"`
}

// Input is the source of a conversion.
type Input struct {
	// Data is the raw encoded image bytes.
	Data []byte `json:"-"`

	// Mime is the declared media type of Data (may be empty).
	Mime string `json:"mime,omitempty"`

	// FileName is carried through to the result unmodified.
	FileName string `json:"file_name,omitempty"`
}

// Result is the outcome of a conversion. It is newly allocated per call and
// owned by the caller.
type Result struct {
	// Payload is the encoded image as a self-describing data URL.
	Payload string `json:"payload"`

	// Mime is the resolved media type of Payload.
	Mime string `json:"mime"`

	// SizeBytes is the decoded byte length implied by Payload.
	SizeBytes int `json:"size_bytes"`

	// Width and Height are set only when a render pass occurred.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// FileName is the input file name, passed through unmodified.
	FileName string `json:"file_name,omitempty"`
}
