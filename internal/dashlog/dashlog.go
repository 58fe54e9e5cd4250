package dashlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Log format: line-oriented text as written by 70mai dashcams.
//
// - Blank lines ignored.
// - Line "$V02" marks a segment boundary. The first one in a file is a
//   leading marker and does not close a segment.
// - Data lines are comma-separated, fields by position:
//   <unix_ts>,<status>,<lat>,<lon>,<unused>,<speed_cm_s>
//   where status "A" means a valid fix and speed is hundredths of m/s
//   (may be empty).

const delimiter = "$V02"

// Point is a single accepted GPS fix. Lat and Lon keep the exact strings
// from the log so the output echoes the device's precision.
type Point struct {
	Unix     int64
	Lat      string
	Lon      string
	Speed    int // hundredths of m/s, valid only when HasSpeed
	HasSpeed bool
}

// Track is one recording segment between device delimiters. Tracks produced
// by Parse are never empty and their timestamps are strictly increasing.
type Track []Point

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a dashcam GPS log and splits it into tracks.
//
// Fixes are dropped (not errors) when the status is not "A", when a
// coordinate is the cold-start literal "0.000000", or when the timestamp
// does not advance past the previously accepted fix in the same segment.
// Structurally broken lines abort the parse.
func Parse(r io.Reader) ([]Track, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tracks []Track
	var current Track
	firstSegment := true
	havePrev := false
	var prevUnix int64

	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if line == delimiter {
			if firstSegment {
				firstSegment = false
				continue
			}
			if len(current) > 0 {
				tracks = append(tracks, current)
			}
			current = nil
			havePrev = false
			continue
		}

		p, status, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		// Compare only against the previously accepted fix; a backwards
		// outlier is dropped without moving the cursor.
		if havePrev && p.Unix <= prevUnix {
			continue
		}
		if status != "A" || p.Lat == "0.000000" || p.Lon == "0.000000" {
			continue
		}
		current = append(current, p)
		prevUnix = p.Unix
		havePrev = true
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if len(current) > 0 {
		tracks = append(tracks, current)
	}
	return tracks, nil
}

func parsePoint(line string) (Point, string, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return Point{}, "", fmt.Errorf("invalid log line (want >= 6 fields, got %d): %q", len(parts), line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	unix, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Point{}, "", fmt.Errorf("invalid timestamp %q: %w", parts[0], err)
	}

	p := Point{Unix: unix, Lat: parts[2], Lon: parts[3]}
	if sp := parts[5]; sp != "" {
		v, err := strconv.Atoi(sp)
		if err != nil {
			return Point{}, "", fmt.Errorf("invalid speed %q: %w", sp, err)
		}
		p.Speed = v
		p.HasSpeed = true
	}
	return p, parts[1], nil
}
