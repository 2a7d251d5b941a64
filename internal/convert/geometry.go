package convert

import "math"

// Geometry describes a render pass: the output dimensions and the source
// sub-rectangle to sample. The sampling rectangle is always fully contained
// within the source bounds and the output dimensions are always >= 1.
type Geometry struct {
	// Width and Height are the output dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SX, SY, SW, SH describe the source sampling rectangle.
	SX int `json:"sx"`
	SY int `json:"sy"`
	SW int `json:"sw"`
	SH int `json:"sh"`
}

// ComputeGeometry determines output dimensions and the source sampling
// rectangle for the given bounds and fit mode. A zero bound never
// constrains; effective bounds are clamped to the source so the output is
// never upscaled.
//
// contain scales by min(maxW/srcW, maxH/srcH, 1) and samples the full
// source. cover produces exactly the effective bounds and samples the
// largest centered sub-rectangle matching the target aspect ratio.
//
// Dimensions round to nearest; crop origins floor. The asymmetry keeps the
// sampling rectangle inside the source bounds.
//
// Source dimensions must be positive; a successful decode guarantees that.
func ComputeGeometry(srcW, srcH, maxW, maxH int, fit Fit) Geometry {
	boundW := srcW
	if maxW > 0 && maxW < srcW {
		boundW = maxW
	}
	boundH := srcH
	if maxH > 0 && maxH < srcH {
		boundH = maxH
	}

	if fit == FitCover {
		return coverGeometry(srcW, srcH, boundW, boundH)
	}

	scale := math.Min(1, math.Min(
		float64(boundW)/float64(srcW),
		float64(boundH)/float64(srcH),
	))

	outW := int(math.Round(float64(srcW) * scale))
	outH := int(math.Round(float64(srcH) * scale))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	return Geometry{Width: outW, Height: outH, SW: srcW, SH: srcH}
}

func coverGeometry(srcW, srcH, outW, outH int) Geometry {
	targetAspect := float64(outW) / float64(outH)
	srcAspect := float64(srcW) / float64(srcH)

	sw, sh := srcW, srcH
	if srcAspect > targetAspect {
		// Source is relatively wider: crop width.
		sw = int(math.Round(float64(srcH) * targetAspect))
	} else {
		sh = int(math.Round(float64(srcW) / targetAspect))
	}

	return Geometry{
		Width:  outW,
		Height: outH,
		SX:     (srcW - sw) / 2,
		SY:     (srcH - sh) / 2,
		SW:     sw,
		SH:     sh,
	}
}
