package main

import "testing"

func TestReplaceExt(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{path: "GPSData000001.txt", want: "GPSData000001.gpx"},
		{path: "dir/log.TXT", want: "dir/log.gpx"},
		{path: "noext", want: "noext.gpx"},
		{path: "a/b.c/log.txt", want: "a/b.c/log.gpx"},
	}
	for _, tc := range cases {
		if got := replaceExt(tc.path, ".gpx"); got != tc.want {
			t.Fatalf("replaceExt(%q)=%q want %q", tc.path, got, tc.want)
		}
	}
}
