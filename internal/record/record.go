// Package record decodes the vendor GPS log: one record per line, fields
// comma-separated, first field a single-character tag. The format has no
// escaping and no framing to resynchronize on, so every decode error is
// terminal for the stream.
package record

import (
	"time"
)

// Record is one decoded line of the GPS stream.
//
// The tag set is closed: U, V, A, I, H, D. Anything else fails decoding
// rather than being dropped.
type Record interface {
	Tag() string
}

// User identifies the account that produced the recording (tag U).
type User struct {
	Name string
}

// RecorderVersion is the firmware/recorder version string (tag V).
type RecorderVersion struct {
	Version string
}

// AppVersion is the companion application version string (tag A).
type AppVersion struct {
	Version string
}

// Device carries the trailing device identification fields of an I record,
// in input order. The producer does not document their meaning; they are
// kept verbatim for diagnostics.
type Device struct {
	Fields []string
}

// Anchor is an absolute position fix (tag H). It establishes the reference
// origin that subsequent Delta records accumulate from until the next Anchor.
type Anchor struct {
	// Time is the fix instant. The wall clock is the UTC epoch value from
	// the record; the location is a fixed zone derived from the paired
	// local epoch value. Comparisons are absolute regardless of offset.
	Time time.Time
	Lat  float64 // decimal degrees
	Lon  float64 // decimal degrees
	Ele  float64 // meters
}

// Delta is a relative movement record (tag D). All position fields are
// changes since the owning Anchor, not since the previous Delta.
type Delta struct {
	Duration time.Duration // elapsed since the owning Anchor
	Lat      float64       // decimal degrees change
	Lon      float64       // decimal degrees change
	Ele      float64       // meters change
	Speed    float64       // meters per second
	Heading  float64       // compass degrees, 0-360
}

func (User) Tag() string            { return "U" }
func (RecorderVersion) Tag() string { return "V" }
func (AppVersion) Tag() string      { return "A" }
func (Device) Tag() string          { return "I" }
func (Anchor) Tag() string          { return "H" }
func (Delta) Tag() string           { return "D" }
