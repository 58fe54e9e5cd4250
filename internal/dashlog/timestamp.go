package dashlog

import "time"

// The device stamps records with epoch seconds computed from a wall clock
// already shifted to Shanghai time, without recording that offset. Reading
// the value as true epoch seconds is therefore off by the zone offset:
// recover the intended wall-clock reading in the device zone, relabel that
// reading as UTC, then convert to the target zone.

// Asia/Shanghai is UTC+8 with no daylight saving, so a fixed zone is exact
// and avoids a tzdata dependency.
var deviceZone = time.FixedZone("Asia/Shanghai", 8*60*60)

// Localize converts a device timestamp to an RFC 3339 string in local.
func Localize(unix int64, local *time.Location) string {
	wall := time.Unix(unix, 0).In(deviceZone)
	utc := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC)
	return utc.In(local).Format(time.RFC3339)
}
