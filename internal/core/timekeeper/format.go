package timekeeper

import "fmt"

// FormatSeconds renders a second count as mm:ss. Negative values render as 00:00.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
