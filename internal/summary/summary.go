// Package summary derives aggregate statistics from a decoded record stream
// for console reporting. It is read-only and independent of reconstruction
// state.
package summary

import (
	"fmt"
	"io"
	"sort"

	"trackconv/internal/record"
)

// metersPerSecondToMPH matches the recorder's own reporting constant.
const metersPerSecondToMPH = 2.2369363

// Stats accumulates per-stream aggregates. The zero value is not ready;
// use New.
type Stats struct {
	Records   int
	Anchors   int
	Deltas    int
	MaxSpeed  float64 // m/s; meaningful only when Deltas > 0
	TagCounts map[string]int
}

func New() *Stats {
	return &Stats{TagCounts: map[string]int{}}
}

// Observe folds one record into the aggregates.
func (s *Stats) Observe(rec record.Record) {
	s.Records++
	s.TagCounts[rec.Tag()]++
	switch r := rec.(type) {
	case record.Anchor:
		s.Anchors++
	case record.Delta:
		s.Deltas++
		if r.Speed > s.MaxSpeed {
			s.MaxSpeed = r.Speed
		}
	}
}

// HasData reports whether at least one delta record was observed, i.e.
// whether MaxSpeed is meaningful.
func (s *Stats) HasData() bool {
	return s.Deltas > 0
}

// MaxSpeedMPH converts MaxSpeed to miles per hour.
func (s *Stats) MaxSpeedMPH() float64 {
	return s.MaxSpeed * metersPerSecondToMPH
}

// Print writes the human-readable summary.
func (s *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "read %d records\n", s.Records)

	tags := make([]string, 0, len(s.TagCounts))
	for tag := range s.TagCounts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(w, "  %s: %d\n", tag, s.TagCounts[tag])
	}

	if !s.HasData() {
		fmt.Fprintf(w, "max speed: no data\n")
		return
	}
	fmt.Fprintf(w, "max speed: %v m/s, %.1f MPH\n", s.MaxSpeed, s.MaxSpeedMPH())
}
