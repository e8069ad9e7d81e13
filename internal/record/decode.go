package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Decode error sentinels. Callers classify with errors.Is; the wrapped
// message carries the field or tag in question.
var (
	ErrMissingTag   = errors.New("record: missing tag field")
	ErrUnknownTag   = errors.New("record: unrecognized tag")
	ErrMissingField = errors.New("record: missing field")
	ErrBadField     = errors.New("record: invalid field")
)

// Degree deltas are encoded as integer millionths of a degree in every known
// format revision.
const degreeScale = 1_000_000

// DefaultElevationScale is the sub-meter divisor for D elevation deltas in
// the original recorder firmware (decimetres). A later revision uses 100.
const DefaultElevationScale = 10

// Schema carries the arithmetic constants that vary between format
// revisions.
type Schema struct {
	// ElevationScale divides the integer D elevation field into meters.
	// Zero means DefaultElevationScale.
	ElevationScale int64
}

// datetime pattern embedded in H records. time.Parse accepts an optional
// fractional second after the seconds field.
const datetimeLayout = "2006-01-02T15:04:05"

// ParseLine decodes one line of the GPS stream into a Record.
//
// Integer sub-unit fields are parsed as integers and divided by their scale
// constant exactly once; the raw string is never parsed as a float.
func ParseLine(line string, sc Schema) (Record, error) {
	if sc.ElevationScale == 0 {
		sc.ElevationScale = DefaultElevationScale
	}

	parts := strings.Split(line, ",")
	tag := parts[0]
	if tag == "" {
		return nil, ErrMissingTag
	}
	f := fields(parts[1:])

	switch tag {
	case "U":
		name, err := f.str(0, "username")
		if err != nil {
			return nil, err
		}
		return User{Name: name}, nil
	case "V":
		v, err := f.str(0, "version")
		if err != nil {
			return nil, err
		}
		return RecorderVersion{Version: v}, nil
	case "A":
		v, err := f.str(0, "app version")
		if err != nil {
			return nil, err
		}
		return AppVersion{Version: v}, nil
	case "I":
		return Device{Fields: append([]string(nil), f...)}, nil
	case "H":
		return parseAnchor(f)
	case "D":
		return parseDelta(f, sc)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
	}
}

// H: absolute position fix.
// Fields (after the tag):
//
//	0: UTC timestamp (integer ms since epoch)
//	1: latitude (decimal degrees)
//	2: longitude (decimal degrees)
//	3: elevation (meters)
//	4: local timestamp (integer ms since epoch)
//	5: UTC datetime string (YYYY-MM-DDTHH:MM:SS[.fff])
//	6: local datetime string (same pattern)
//
// The datetime strings duplicate the epoch fields; they are validated as a
// producer sanity check and then discarded.
func parseAnchor(f fields) (Record, error) {
	utcMillis, err := f.int(0, "timestamp")
	if err != nil {
		return nil, err
	}
	lat, err := f.float(1, "latitude")
	if err != nil {
		return nil, err
	}
	lon, err := f.float(2, "longitude")
	if err != nil {
		return nil, err
	}
	ele, err := f.float(3, "elevation")
	if err != nil {
		return nil, err
	}
	localMillis, err := f.int(4, "local timestamp")
	if err != nil {
		return nil, err
	}
	if err := f.datetime(5, "first datetime"); err != nil {
		return nil, err
	}
	if err := f.datetime(6, "second datetime"); err != nil {
		return nil, err
	}

	return Anchor{
		Time: resolveTimestamp(utcMillis, localMillis),
		Lat:  lat,
		Lon:  lon,
		Ele:  ele,
	}, nil
}

// D: relative movement since the owning H record.
// Fields (after the tag):
//
//	0: elapsed time (integer ms)
//	1: latitude change (integer millionths of a degree)
//	2: longitude change (integer millionths of a degree)
//	3: elevation change (integer sub-meter units, Schema.ElevationScale per meter)
//	4: speed (m/s)
//	5: heading (compass degrees)
func parseDelta(f fields, sc Schema) (Record, error) {
	millis, err := f.int(0, "milliseconds")
	if err != nil {
		return nil, err
	}
	latMicro, err := f.int(1, "latitude change")
	if err != nil {
		return nil, err
	}
	lonMicro, err := f.int(2, "longitude change")
	if err != nil {
		return nil, err
	}
	eleSub, err := f.int(3, "elevation change")
	if err != nil {
		return nil, err
	}
	speed, err := f.float(4, "speed")
	if err != nil {
		return nil, err
	}
	heading, err := f.float(5, "heading")
	if err != nil {
		return nil, err
	}

	return Delta{
		Duration: time.Duration(millis) * time.Millisecond,
		Lat:      float64(latMicro) / degreeScale,
		Lon:      float64(lonMicro) / degreeScale,
		Ele:      float64(eleSub) / float64(sc.ElevationScale),
		Speed:    speed,
		Heading:  heading,
	}, nil
}

// resolveTimestamp builds the fixed-offset fix instant from the paired epoch
// fields. The offset is derived, not stored: (local - utc) / 1000 seconds,
// integer division truncating toward zero like the producer. The absolute
// instant comes from the UTC field alone; the offset affects display only.
func resolveTimestamp(utcMillis, localMillis int64) time.Time {
	offsetSecs := (localMillis - utcMillis) / 1000
	return time.UnixMilli(utcMillis).In(time.FixedZone("", int(offsetSecs)))
}

// fields wraps the value fields of a line with positional accessors that
// name the field in every error.
type fields []string

func (f fields) str(i int, name string) (string, error) {
	if i >= len(f) {
		return "", fmt.Errorf("%w %s", ErrMissingField, name)
	}
	return f[i], nil
}

func (f fields) int(i int, name string) (int64, error) {
	s, err := f.str(i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrBadField, name, err)
	}
	return v, nil
}

func (f fields) float(i int, name string) (float64, error) {
	s, err := f.str(i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrBadField, name, err)
	}
	return v, nil
}

func (f fields) datetime(i int, name string) error {
	s, err := f.str(i, name)
	if err != nil {
		return err
	}
	if _, err := time.Parse(datetimeLayout, s); err != nil {
		return fmt.Errorf("%w %s: %w", ErrBadField, name, err)
	}
	return nil
}
