package report

import "time"

// Preset names a commonly requested date range.
type Preset string

const (
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	PresetLast7     Preset = "last7"
	PresetMonth     Preset = "month"
)

// PresetRange resolves a preset to concrete bounds relative to now. Unknown
// presets resolve to the current month, matching the catch-all of the range
// picker this replaces.
func PresetRange(p Preset, now time.Time) (start, end time.Time) {
	switch p {
	case PresetToday:
		return StartOfDay(now), EndOfDay(now)
	case PresetYesterday:
		y := now.AddDate(0, 0, -1)
		return StartOfDay(y), EndOfDay(y)
	case PresetLast7:
		return StartOfDay(now.AddDate(0, 0, -6)), EndOfDay(now)
	default:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, EndOfDay(now)
	}
}
