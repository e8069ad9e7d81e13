// Package gpx serializes reconstructed tracks as GPX XML.
//
// The writer accepts named point sequences and owns all wire-format detail.
// Speed and course are per-point GPX 1.0 fields, which is why the document
// declares 1.0 rather than 1.1 (1.1 moved them into extensions).
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"trackconv/internal/track"
)

// Track is one named point sequence.
type Track struct {
	Name   string
	Points []track.Point
}

const (
	gpxVersion = "1.0"
	gpxXmlns   = "http://www.topografix.com/GPX/1/0"
	creator    = "trackconv"

	// Point timestamps keep their fixed offset from the recording.
	timeLayout = "2006-01-02T15:04:05.000Z07:00"
)

type gpxDoc struct {
	XMLName xml.Name   `xml:"gpx"`
	Version string     `xml:"version,attr"`
	Creator string     `xml:"creator,attr"`
	Xmlns   string     `xml:"xmlns,attr"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name     string       `xml:"name,omitempty"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat    float64 `xml:"lat,attr"`
	Lon    float64 `xml:"lon,attr"`
	Ele    float64 `xml:"ele"`
	Time   string  `xml:"time"`
	Course float64 `xml:"course"`
	Speed  float64 `xml:"speed"`
}

// Write serializes the tracks to w, one trkseg per track.
func Write(w io.Writer, tracks []Track) error {
	doc := gpxDoc{
		Version: gpxVersion,
		Creator: creator,
		Xmlns:   gpxXmlns,
	}
	for _, t := range tracks {
		seg := gpxSegment{Points: make([]gpxPoint, 0, len(t.Points))}
		for _, p := range t.Points {
			seg.Points = append(seg.Points, gpxPoint{
				Lat:    p.Lat,
				Lon:    p.Lon,
				Ele:    p.Ele,
				Time:   p.Time.Format(timeLayout),
				Course: p.Course,
				Speed:  p.Speed,
			})
		}
		doc.Tracks = append(doc.Tracks, gpxTrack{
			Name:     t.Name,
			Segments: []gpxSegment{seg},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("gpx: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gpx: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("gpx: write trailer: %w", err)
	}
	return nil
}

// WriteFile writes the tracks to path. The document lands in a temporary
// file first and is renamed into place only after a clean encode and close,
// so a failed run never leaves a half-written file at path.
func WriteFile(path string, tracks []Track) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("gpx: create temp file: %w", err)
	}
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, tracks); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("gpx: close temp file: %w", err)
	}
	name := tmp.Name()
	tmp = nil
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("gpx: finalize %s: %w", path, err)
	}
	return nil
}
