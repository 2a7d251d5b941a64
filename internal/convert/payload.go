package convert

import (
	"encoding/base64"
	"strings"
)

// EncodePayload wraps raw bytes in a self-describing data URL:
//
//	data:<mime>;base64,<data>
func EncodePayload(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodePayload extracts the raw bytes from a data URL produced by
// EncodePayload.
func DecodePayload(payload string) ([]byte, error) {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

// EstimateBytes computes the decoded byte length implied by a base64 data
// URL without decoding it: strip the header up to the first comma, then
// floor(n*3/4) minus one byte per trailing pad character. Exact for
// well-formed payloads with 0, 1 or 2 pads.
func EstimateBytes(payload string) int {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}

	padding := 0
	if strings.HasSuffix(payload, "==") {
		padding = 2
	} else if strings.HasSuffix(payload, "=") {
		padding = 1
	}

	return len(payload)*3/4 - padding
}
