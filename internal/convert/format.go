package convert

import "strings"

// mimeOctetStream is returned when neither the source nor the target pins
// down a media type.
const mimeOctetStream = "application/octet-stream"

// ResolveMime maps a requested target format to a concrete output media
// type. An empty, "original" or "base64" target keeps the source type (or a
// generic octet-stream type when the source type is empty). Unrecognized
// targets fall back to the source type.
func ResolveMime(sourceMime string, target Format) string {
	switch target {
	case "", FormatOriginal, FormatBase64:
		if sourceMime == "" {
			return mimeOctetStream
		}
		return sourceMime
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return sourceMime
	}
}

// ClampMime substitutes raster types the encoder cannot produce with
// image/png. Only jpeg and webp pass through as requested.
func ClampMime(mime string) string {
	switch mime {
	case "image/jpeg", "image/webp":
		return mime
	default:
		return "image/png"
	}
}

// isSVGMime reports whether the media type is SVG, which passes through as
// opaque text unless a raster transform is requested.
func isSVGMime(mime string) bool {
	return mime == "image/svg+xml"
}

// isImageMime reports whether the media type is in the image family.
func isImageMime(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

// isPassthrough reports whether the target format requests the source bytes
// unchanged.
func isPassthrough(target Format) bool {
	switch target {
	case "", FormatOriginal, FormatBase64:
		return true
	}
	return false
}
