package summary

import (
	"strings"
	"testing"
	"time"

	"trackconv/internal/record"
)

func TestStats_MaxSpeedAcrossDeltas(t *testing.T) {
	s := New()
	s.Observe(record.User{Name: "alice"})
	s.Observe(record.Anchor{Time: time.Unix(0, 0)})
	for _, speed := range []float64{1.5, 9.25, 4.0} {
		s.Observe(record.Delta{Speed: speed})
	}

	if s.Records != 5 {
		t.Fatalf("records=%d want 5", s.Records)
	}
	if s.Anchors != 1 || s.Deltas != 3 {
		t.Fatalf("anchors=%d deltas=%d", s.Anchors, s.Deltas)
	}
	if !s.HasData() {
		t.Fatalf("expected data")
	}
	if s.MaxSpeed != 9.25 {
		t.Fatalf("max speed=%v want 9.25", s.MaxSpeed)
	}
	if got, want := s.MaxSpeedMPH(), 9.25*2.2369363; got != want {
		t.Fatalf("mph=%v want %v", got, want)
	}
}

func TestStats_EmptyStreamHasNoData(t *testing.T) {
	s := New()
	if s.HasData() {
		t.Fatalf("expected no data")
	}

	var out strings.Builder
	s.Print(&out)
	if !strings.Contains(out.String(), "read 0 records") {
		t.Fatalf("output=%q", out.String())
	}
	if !strings.Contains(out.String(), "no data") {
		t.Fatalf("empty stream should report no data, got %q", out.String())
	}
}

func TestStats_NoDeltasHasNoData(t *testing.T) {
	s := New()
	s.Observe(record.Anchor{Time: time.Unix(0, 0)})
	s.Observe(record.Device{})
	if s.HasData() {
		t.Fatalf("anchors alone should not count as data")
	}
}

func TestStats_PrintIncludesTagCountsAndUnits(t *testing.T) {
	s := New()
	s.Observe(record.Anchor{Time: time.Unix(0, 0)})
	s.Observe(record.Delta{Speed: 2.5})

	var out strings.Builder
	s.Print(&out)
	text := out.String()
	for _, want := range []string{"read 2 records", "H: 1", "D: 1", "2.5 m/s", "5.6 MPH"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}
