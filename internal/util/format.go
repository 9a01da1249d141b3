package util

import (
	"fmt"
)

// FormatCount renders a sample count with a K/M suffix for large values.
func FormatCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatMetric renders a metric value with its unit, e.g. "12.4 Mbps".
func FormatMetric(value float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatExtent renders a [min, max] pair for display.
func FormatExtent(min, max float64) string {
	return fmt.Sprintf("[%.2f, %.2f]", min, max)
}
