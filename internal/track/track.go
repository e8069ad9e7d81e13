// Package track folds a decoded record stream into absolute track points.
//
// An H record seeds the current anchor; each D record derives one output
// point from that anchor. Deltas are cumulative offsets from the anchor, not
// from the previously emitted point, so two identical deltas after the same
// anchor produce identical points.
package track

import (
	"errors"
	"fmt"
	"time"

	"trackconv/internal/record"
)

// ErrNoAnchor reports a delta record with no preceding anchor. The stream
// has no way to place such a delta; the run must abort.
var ErrNoAnchor = errors.New("track: delta record with no preceding anchor")

// Point is one reconstructed absolute sample.
type Point struct {
	Time   time.Time
	Lat    float64 // decimal degrees
	Lon    float64 // decimal degrees
	Ele    float64 // meters
	Speed  float64 // m/s
	Course float64 // compass degrees
}

// Builder accumulates points one record at a time. The zero value is ready
// to use. Builder is not safe for concurrent use; the pipeline is strictly
// sequential.
type Builder struct {
	anchor *Point
	points []Point
}

// Add folds one record into the builder.
//
// Anchors replace the current anchor and emit nothing; speed and course stay
// zero until a delta overwrites them. Deltas clone the anchor, apply their
// offsets, and append the result. Info records (U, V, A, I) are inert.
func (b *Builder) Add(rec record.Record) error {
	switch r := rec.(type) {
	case record.Anchor:
		b.anchor = &Point{Time: r.Time, Lat: r.Lat, Lon: r.Lon, Ele: r.Ele}
	case record.Delta:
		if b.anchor == nil {
			return ErrNoAnchor
		}
		p := *b.anchor
		p.Time = p.Time.Add(r.Duration)
		p.Lat += r.Lat
		p.Lon += r.Lon
		p.Ele += r.Ele
		p.Speed = r.Speed
		p.Course = r.Heading
		b.points = append(b.points, p)
	}
	return nil
}

// Points returns the emitted points in input order. An input with no delta
// records yields an empty sequence.
func (b *Builder) Points() []Point {
	return b.points
}

// Rebuild folds a complete record sequence and returns the reconstructed
// points. Errors carry the zero-based record index.
func Rebuild(recs []record.Record) ([]Point, error) {
	var b Builder
	for i, rec := range recs {
		if err := b.Add(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return b.Points(), nil
}
