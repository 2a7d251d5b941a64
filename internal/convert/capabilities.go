package convert

import "os"

// Capabilities describes what the runtime offers a conversion. The pipeline
// selects its surface implementation and decode strategy once per call from
// this value; tests construct it directly to force either path.
type Capabilities struct {
	// HighQualityScaler selects the Lanczos resampling surface. When false
	// the linear surface is used instead.
	HighQualityScaler bool

	// FallbackDecode enables the secondary decode path through a temporary
	// file when the direct bitmap decode fails.
	FallbackDecode bool
}

// DetectCapabilities probes the runtime environment once. Both capabilities
// default to on; the environment can force the reduced paths:
//
//	IMGPIPE_SCALER=linear          use the linear resampling surface
//	IMGPIPE_NO_FALLBACK_DECODE=1   disable the temp-file decode fallback
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		HighQualityScaler: true,
		FallbackDecode:    true,
	}

	if os.Getenv("IMGPIPE_SCALER") == "linear" {
		caps.HighQualityScaler = false
	}
	if os.Getenv("IMGPIPE_NO_FALLBACK_DECODE") != "" {
		caps.FallbackDecode = false
	}

	return caps
}
