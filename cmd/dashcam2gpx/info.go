package main

import (
	"fmt"
	"time"

	"dashcam2gpx/internal/dashlog"
)

type monthBucket struct {
	Month string
	Count int
}

type trackSummary struct {
	Tracks int
	Start  string
	End    string
	Months []monthBucket
}

// summarizeTracks reports track count, localized time span, and a
// per-month histogram of track starts.
//
// Tracks arrive in file order, which the parser guarantees is chronological,
// so the histogram is a single pass with a running bucket and no sorting.
func summarizeTracks(tracks []dashlog.Track, zone *time.Location) trackSummary {
	s := trackSummary{Tracks: len(tracks)}
	if len(tracks) == 0 {
		return s
	}

	first := tracks[0]
	last := tracks[len(tracks)-1]
	s.Start = dashlog.Localize(first[0].Unix, zone)
	s.End = dashlog.Localize(last[len(last)-1].Unix, zone)

	month := ""
	count := 0
	for _, t := range tracks {
		m := dashlog.Localize(t[0].Unix, zone)[:7] // year-month prefix
		if m != month {
			if count > 0 {
				s.Months = append(s.Months, monthBucket{Month: month, Count: count})
			}
			month = m
			count = 0
		}
		count++
	}
	s.Months = append(s.Months, monthBucket{Month: month, Count: count})
	return s
}

func printTrackInfo(path string, zone *time.Location) error {
	tracks, err := dashlog.ParseFile(path)
	if err != nil {
		return err
	}

	s := summarizeTracks(tracks, zone)

	fmt.Printf("path: %s\n", path)
	fmt.Printf("tracks: %d\n", s.Tracks)
	if s.Tracks == 0 {
		return nil
	}
	fmt.Printf("start: %s\n", s.Start)
	fmt.Printf("end: %s\n", s.End)
	fmt.Printf("tracks_per_month:\n")
	for _, b := range s.Months {
		fmt.Printf("  %s: %d\n", b.Month, b.Count)
	}
	return nil
}
