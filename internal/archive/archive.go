// Package archive opens the recorder's zip container and locates its two
// member streams: the GPS log (.gps) and the accelerometer log (.acc).
//
// The container contract is strict: exactly one member per suffix, nothing
// else. Any other member name means the archive was not produced by the
// recorder, and the run aborts rather than guessing.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	gpsSuffix = ".gps"
	accSuffix = ".acc"
)

var (
	ErrMissingGPS       = errors.New("archive: missing a " + gpsSuffix + " member")
	ErrMissingAcc       = errors.New("archive: missing a " + accSuffix + " member")
	ErrUnexpectedMember = errors.New("archive: unrecognized member name")
)

// Member describes one archive entry for diagnostics.
type Member struct {
	Name string
	Size uint64
}

// Recording is an opened container. Close releases the underlying archive;
// readers returned by GPS are invalid afterwards.
type Recording struct {
	zr      *zip.ReadCloser
	gpsName string
	accName string
}

// Open reads the archive directory and validates the member set.
func Open(path string) (*Recording, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}

	rec := &Recording{zr: zr}
	for _, f := range zr.File {
		switch {
		case strings.HasSuffix(f.Name, gpsSuffix):
			rec.gpsName = f.Name
		case strings.HasSuffix(f.Name, accSuffix):
			rec.accName = f.Name
		default:
			_ = zr.Close()
			return nil, fmt.Errorf("%w %q", ErrUnexpectedMember, f.Name)
		}
	}
	if rec.gpsName == "" {
		_ = zr.Close()
		return nil, ErrMissingGPS
	}
	if rec.accName == "" {
		_ = zr.Close()
		return nil, ErrMissingAcc
	}
	return rec, nil
}

// GPSName returns the GPS member's name.
func (r *Recording) GPSName() string { return r.gpsName }

// AccName returns the accelerometer member's name. The member is located so
// its absence fails fast, but its contents are never parsed here.
func (r *Recording) AccName() string { return r.accName }

// Members lists the archive entries in directory order.
func (r *Recording) Members() []Member {
	out := make([]Member, 0, len(r.zr.File))
	for _, f := range r.zr.File {
		out = append(out, Member{Name: f.Name, Size: f.UncompressedSize64})
	}
	return out
}

// GPS opens the GPS log member for reading. The caller closes the returned
// reader before closing the Recording.
func (r *Recording) GPS() (io.ReadCloser, error) {
	for _, f := range r.zr.File {
		if f.Name == r.gpsName {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("archive: open member %q: %w", f.Name, err)
			}
			return rc, nil
		}
	}
	// Unreachable after a successful Open.
	return nil, fmt.Errorf("archive: member %q disappeared", r.gpsName)
}

func (r *Recording) Close() error {
	return r.zr.Close()
}
