// Package convert implements the image conversion engine.
//
// A conversion takes raw input bytes plus a set of target options, decodes
// the image, optionally resizes or crops it, re-encodes it to the requested
// format, and returns the encoded payload together with metadata (dimensions,
// byte size, mime type). The flow is strictly pipeline-shaped: resolve the
// target mime, short-circuit to a raw passthrough where no transform is
// needed, otherwise decode, compute geometry, render onto a surface, and
// encode.
//
// # Payloads
//
// Encoded results are self-describing data URLs of the form
//
//	data:<mime>;base64,<data>
//
// so a result carries its own media type alongside the bytes. SVG input is
// treated as an opaque text format: unless a raster transform is requested it
// passes through byte-identical, never decoded.
//
// # Capability selection
//
// The decoder fallback path and the choice of resampling surface depend on
// runtime capabilities. Both are selected once per conversion from an
// explicit Capabilities value passed to New, never by scattered environment
// checks, so tests can force either path deterministically.
//
// # Thread Safety
//
// A Converter holds no mutable state. Conversions are independent and may be
// issued concurrently from multiple goroutines without locking; every value a
// conversion produces is newly allocated and owned by the caller.
//
// # Error Handling
//
// Decode failures surface as *DecodeError and encode failures as
// *EncodeError, both matchable with errors.As and wrapping the underlying
// cause. Neither is retried or masked: when the primary decode path fails and
// no fallback environment is available, the original decode error propagates
// unchanged.
package convert
