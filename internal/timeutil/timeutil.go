package timeutil

import (
	"strconv"
	"strings"
)

// ToMinutes converts an HH:MM string to its minute offset within the day.
// Callers guarantee the HH:MM shape via prior validation.
func ToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// Overlaps reports whether two half-open time ranges [startA, endA) and
// [startB, endB) on the same day intersect. Back-to-back ranges (one ending
// exactly when the other starts) do not overlap.
func Overlaps(startA, endA, startB, endB string) bool {
	a1, b1 := ToMinutes(startA), ToMinutes(endA)
	a2, b2 := ToMinutes(startB), ToMinutes(endB)
	return a1 < b2 && a2 < b1
}
