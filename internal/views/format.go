package views

import (
	"strconv"
	"strings"
)

// formatCelsius prints the shortest exact form with at least one decimal:
// 20 -> "20.0", 18.25 -> "18.25".
func formatCelsius(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
