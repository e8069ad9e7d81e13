package gpx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trackconv/internal/track"
)

func samplePoints() []track.Point {
	tz := time.FixedZone("", 3600)
	base := time.Date(2023, 11, 14, 23, 13, 20, 0, tz)
	return []track.Point{
		{Time: base.Add(time.Second), Lat: 10.5, Lon: 19.75, Ele: 5.1, Speed: 2.5, Course: 90},
	}
}

func TestWrite_Golden(t *testing.T) {
	var out strings.Builder
	err := Write(&out, []Track{{Name: "morning ride", Points: samplePoints()}})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.0" creator="trackconv" xmlns="http://www.topografix.com/GPX/1/0">
  <trk>
    <name>morning ride</name>
    <trkseg>
      <trkpt lat="10.5" lon="19.75">
        <ele>5.1</ele>
        <time>2023-11-14T23:13:21.000+01:00</time>
        <course>90</course>
        <speed>2.5</speed>
      </trkpt>
    </trkseg>
  </trk>
</gpx>
`
	if out.String() != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestWrite_EmptyTrack(t *testing.T) {
	var out strings.Builder
	if err := Write(&out, []Track{{Name: "empty"}}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(out.String(), "<trkseg>") {
		t.Fatalf("expected an empty trkseg, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "<trkpt") {
		t.Fatalf("unexpected points:\n%s", out.String())
	}
}

func TestWriteFile_RenamesIntoPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gpx")
	if err := WriteFile(path, []Track{{Name: "t", Points: samplePoints()}}); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(body), "<trkpt lat=\"10.5\"") {
		t.Fatalf("unexpected body:\n%s", body)
	}

	// No temp litter left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.gpx" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}
