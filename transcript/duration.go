package transcript

import (
	"fmt"
	"time"
)

// FormatDuration renders a session duration as "<1m", "Xm", "Xh" or "XhYm".
// Seconds are truncated.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	switch {
	case minutes < 1:
		return "<1m"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	}

	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, rest)
}
