package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dashcam2gpx/internal/config"
	"dashcam2gpx/internal/dashlog"
	"dashcam2gpx/internal/gpx"
)

func main() {
	var (
		output        string
		segmentsLimit int
		configPath    string
		verbose       bool
		info          bool
	)
	flag.StringVar(&output, "o", "", "Path for GPX output; defaults to the input path with a .gpx extension")
	flag.IntVar(&segmentsLimit, "s", 0, "Maximum number of track segments per GPX file; 0 = no limit")
	flag.StringVar(&configPath, "c", "", "Path to optional YAML config")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.BoolVar(&info, "info", false, "Print a summary of the parsed tracks instead of converting")
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <dashcam log file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config load failed")
		}
	}

	// Config supplies defaults; flags that were set on the command line win.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["o"] && cfg.Output != "" {
		output = cfg.Output
	}
	if !set["s"] {
		segmentsLimit = cfg.SegmentsLimit
	}
	if segmentsLimit < 0 {
		log.Fatal().Int("segments_limit", segmentsLimit).Msg("segments limit must be >= 0")
	}
	if output == "" {
		output = replaceExt(input, ".gpx")
	}

	zone, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zone resolution failed")
	}

	if info {
		if err := printTrackInfo(input, zone); err != nil {
			log.Fatal().Err(err).Str("path", input).Msg("info failed")
		}
		return
	}

	tracks, err := dashlog.ParseFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("parse failed")
	}
	log.Debug().Str("path", input).Int("tracks", len(tracks)).Msg("parsed dashcam log")

	if len(tracks) == 0 {
		log.Warn().Str("path", input).Msg("no valid tracks found, nothing written")
		return
	}

	w := gpx.Writer{Zone: zone, SpeedExtensions: cfg.SpeedExtensions, Log: log}
	if err := w.Write(tracks, output, segmentsLimit); err != nil {
		log.Fatal().Err(err).Msg("gpx write failed")
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
