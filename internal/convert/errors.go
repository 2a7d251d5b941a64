package convert

// DecodeError reports that input bytes could not be interpreted as an image
// by any available decode path. It wraps the primary decode error unchanged.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to decode image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that a rendered surface could not be serialized to the
// clamped target type. It is fatal for the conversion; nothing retries it.
type EncodeError struct {
	Mime string
	Err  error
}

func (e *EncodeError) Error() string {
	return "failed to encode image as " + e.Mime + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }
