package utils

import "strconv"

// TsAfter reports whether ts is strictly newer than floor. Slack timestamps
// are string-encoded decimals ("1700000000.000100") whose numeric order is
// chronological order. Unparseable values fall back to string comparison.
func TsAfter(ts, floor string) bool {
	a, errA := strconv.ParseFloat(ts, 64)
	b, errB := strconv.ParseFloat(floor, 64)
	if errA != nil || errB != nil {
		return ts > floor
	}
	return a > b
}
