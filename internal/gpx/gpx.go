package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dashcam2gpx/internal/dashlog"
)

const (
	gpxNamespace   = "http://www.topografix.com/GPX/1/1"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"
	tpxNamespace   = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"
)

type gpxDoc struct {
	XMLName        xml.Name `xml:"gpx"`
	Version        string   `xml:"version,attr"`
	Creator        string   `xml:"creator,attr"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	XmlnsTPX       string   `xml:"xmlns:gpxtpx,attr,omitempty"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Trk            trk      `xml:"trk"`
}

type trk struct {
	Segments []trkseg `xml:"trkseg"`
}

type trkseg struct {
	Points []trkpt `xml:"trkpt"`
}

type trkpt struct {
	Lat        string      `xml:"lat,attr"`
	Lon        string      `xml:"lon,attr"`
	Time       string      `xml:"time"`
	Extensions *extensions `xml:"extensions,omitempty"`
}

type extensions struct {
	TrackPointExtension trackPointExtension `xml:"gpxtpx:TrackPointExtension"`
}

type trackPointExtension struct {
	Speed string `xml:"gpxtpx:speed"`
}

// Writer renders parsed tracks as GPX 1.1 files.
type Writer struct {
	// Zone is the target zone for <time> values; nil means time.Local.
	Zone *time.Location
	// SpeedExtensions enables the gpxtpx speed block for points that
	// carried a speed field.
	SpeedExtensions bool
	Log             zerolog.Logger
}

// Write renders tracks to path as one <trk> with one <trkseg> per track.
//
// segmentsLimit caps the number of tracks per output file: 0 (or a limit at
// or above the track count) writes a single file at path, anything else
// splits into consecutive chunks named <stem>_1.gpx, <stem>_2.gpx, ...
// Chunk boundaries never split a track.
func (w *Writer) Write(tracks []dashlog.Track, path string, segmentsLimit int) error {
	if segmentsLimit <= 0 || segmentsLimit >= len(tracks) {
		return w.writeFile(path, tracks)
	}
	for i, k := 0, 1; i < len(tracks); i, k = i+segmentsLimit, k+1 {
		end := i + segmentsLimit
		if end > len(tracks) {
			end = len(tracks)
		}
		if err := w.writeFile(chunkPath(path, k), tracks[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// chunkPath derives the name of the k-th (1-indexed) chunk from path by
// stripping its extension and appending _<k>.gpx.
func chunkPath(path string, k int) string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return fmt.Sprintf("%s_%d.gpx", stem, k)
}

func (w *Writer) writeFile(path string, tracks []dashlog.Track) error {
	zone := w.Zone
	if zone == nil {
		zone = time.Local
	}

	doc := gpxDoc{
		Version:        "1.1",
		Creator:        "dashcam2gpx",
		Xmlns:          gpxNamespace,
		XmlnsXSI:       xsiNamespace,
		SchemaLocation: schemaLocation,
	}
	points := 0
	withSpeed := false
	for _, t := range tracks {
		seg := trkseg{Points: make([]trkpt, 0, len(t))}
		for _, p := range t {
			pt := trkpt{
				Lat:  p.Lat,
				Lon:  p.Lon,
				Time: dashlog.Localize(p.Unix, zone),
			}
			if w.SpeedExtensions && p.HasSpeed {
				pt.Extensions = &extensions{trackPointExtension{
					Speed: fmt.Sprintf("%.2f", float64(p.Speed)/100),
				}}
				withSpeed = true
			}
			seg.Points = append(seg.Points, pt)
			points++
		}
		doc.Trk.Segments = append(doc.Trk.Segments, seg)
	}
	if withSpeed {
		doc.XmlnsTPX = tpxNamespace
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeDoc(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	w.Log.Info().Str("path", path).Int("tracks", len(tracks)).Int("points", points).Msg("wrote gpx")
	return nil
}

func encodeDoc(out io.Writer, doc gpxDoc) error {
	if _, err := io.WriteString(out, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(out)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}
