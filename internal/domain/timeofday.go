package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// All slot arithmetic happens on this type; HH:MM strings exist only at
// the boundary.
type TimeOfDay int

// ParseTimeOfDay parses "H:M", "HH:MM" or "HH:MM:SS" into a TimeOfDay.
// Postgres time columns scan with a seconds component, which is dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// String formats the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
