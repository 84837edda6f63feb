package model

// Location sources reported by the resolver.
const (
	SourceGPS = "gps"
	SourceIP  = "ip"
)

// ResolvedLocation is the outcome of a successful location resolution.
type ResolvedLocation struct {
	Coord   Coord  `json:"coord"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Source  string `json:"source"`
}

// PermissionState is the non-blocking geolocation permission probe result.
type PermissionState string

const (
	PermissionGranted     PermissionState = "granted"
	PermissionDenied      PermissionState = "denied"
	PermissionPrompt      PermissionState = "prompt"
	PermissionUnsupported PermissionState = "unsupported"
	PermissionUnknown     PermissionState = "unknown"
)

// LastLocation is the stored last-known coordinate with the time it was saved,
// in epoch milliseconds.
type LastLocation struct {
	Coord     Coord `json:"coord"`
	Timestamp int64 `json:"timestamp"`
}
