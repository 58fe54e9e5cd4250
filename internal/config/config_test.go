package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "output: out.gpx\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output != "out.gpx" {
		t.Fatalf("output=%q want %q", cfg.Output, "out.gpx")
	}
	if !cfg.SpeedExtensions {
		t.Fatalf("speed_extensions should default to true")
	}
	if cfg.SegmentsLimit != 0 {
		t.Fatalf("segments_limit=%d want 0", cfg.SegmentsLimit)
	}
}

func TestLoad_ExplicitFalseHonored(t *testing.T) {
	path := writeTempConfig(t, "speed_extensions: false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SpeedExtensions {
		t.Fatalf("speed_extensions should be false when set explicitly")
	}
}

func TestLoad_RejectsNegativeSegmentsLimit(t *testing.T) {
	path := writeTempConfig(t, "segments_limit: -1\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for negative segments_limit")
	}
	if err.Error() != "segments_limit must be >= 0" {
		t.Fatalf("error=%q want %q", err.Error(), "segments_limit must be >= 0")
	}
}

func TestLoad_RejectsUnknownZone(t *testing.T) {
	path := writeTempConfig(t, "zone: Not/AZone\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLocation(t *testing.T) {
	loc, err := Config{}.Location()
	if err != nil {
		t.Fatalf("Location() error: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("empty zone should resolve to time.Local")
	}

	loc, err = Config{Zone: "UTC"}.Location()
	if err != nil {
		t.Fatalf("Location() error: %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("zone=%q want UTC", loc)
	}
}
