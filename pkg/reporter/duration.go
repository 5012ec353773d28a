package reporter

import (
	"fmt"
	"strings"
	"time"
)

// DurationFormatter renders a run duration for the summary line.
type DurationFormatter func(time.Duration) string

// HumanizeDuration formats d the way test runners usually print elapsed
// time: "850ms", "1.2s", "1m 3.4s", "1h 2m 3s".
func HumanizeDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	if d < time.Hour {
		d = d.Round(100 * time.Millisecond)
	} else {
		d = d.Round(time.Second)
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if hours > 0 {
		// whole seconds once hours are shown
		parts = append(parts, fmt.Sprintf("%ds", d/time.Second))
	} else {
		seconds := strings.TrimSuffix(fmt.Sprintf("%.1f", d.Seconds()), ".0")
		parts = append(parts, seconds+"s")
	}
	return strings.Join(parts, " ")
}
