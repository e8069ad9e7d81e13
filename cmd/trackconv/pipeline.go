package main

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"trackconv/internal/archive"
	"trackconv/internal/record"
	"trackconv/internal/summary"
	"trackconv/internal/track"
)

// processGPS runs the sequential decode/fold/observe pipeline over the GPS
// line stream: each line is decoded and folded before the next is read.
// The first malformed line aborts with the line number and content attached.
func processGPS(r io.Reader, sc record.Schema, maxLineBytes int, logger *zap.Logger) (*summary.Stats, []track.Point, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4*1024), maxLineBytes)

	stats := summary.New()
	var b track.Builder
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		rec, err := record.ParseLine(line, sc)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
		logger.Debug("decoded record",
			zap.Int("line", lineNo),
			zap.String("tag", rec.Tag()))
		if err := b.Add(rec); err != nil {
			return nil, nil, fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
		stats.Observe(rec)
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("read gps stream: %w", err)
	}
	return stats, b.Points(), nil
}

// openRecording opens the archive and logs its members the way the recorder
// tooling always has ("found file ...").
func openRecording(path string, logger *zap.Logger) (*archive.Recording, error) {
	rec, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	for _, m := range rec.Members() {
		logger.Info("found file",
			zap.String("name", m.Name),
			zap.Uint64("size", m.Size))
	}
	return rec, nil
}
