package view

import "fmt"

// NoTime is the sentinel for a missing or zero time.
const NoTime = "NT"

// FormatTime renders a time in hundredths of a second as "M:SS.ss", or
// "SS.ss" under one minute. This is the single formatting authority,
// renderers must not reformat times themselves.
func FormatTime(timeInt int) string {
	if timeInt <= 0 {
		return NoTime
	}

	minutes := timeInt / 6000
	seconds := float64(timeInt%6000) / 100
	if minutes > 0 {
		return fmt.Sprintf("%d:%05.2f", minutes, seconds)
	}
	return fmt.Sprintf("%.2f", seconds)
}
