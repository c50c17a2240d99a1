package timex

import "time"

const displayLayout = "2006-01-02 15:04:05"

// displayZone is the zone all user-facing timestamps are rendered in.
var displayZone = loadZone("Asia/Shanghai", 8*60*60)

func loadZone(name string, offset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, offset)
	}
	return loc
}

// FormatTime renders t for display. The zero time renders as "-".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(displayZone).Format(displayLayout)
}
