package domain

// GenerateSlots returns the ordered slot start times on the interval grid
// anchored at start. A label is included while it is strictly before end;
// the last slot's own span may run past end, since the slot start alone
// decides membership.
func GenerateSlots(start, end TimeOfDay, intervalMinutes int) []TimeOfDay {
	if intervalMinutes <= 0 || start >= end {
		return nil
	}

	slots := make([]TimeOfDay, 0, (int(end-start)+intervalMinutes-1)/intervalMinutes)
	for cur := start; cur < end; cur += TimeOfDay(intervalMinutes) {
		slots = append(slots, cur)
	}
	return slots
}

// SlotsNeeded converts a service duration to the number of contiguous grid
// positions it occupies: ceil(duration/interval), never less than one.
func SlotsNeeded(durationMinutes, intervalMinutes int) int {
	if durationMinutes <= 0 || intervalMinutes <= 0 {
		return 1
	}
	n := (durationMinutes + intervalMinutes - 1) / intervalMinutes
	if n < 1 {
		n = 1
	}
	return n
}

// HasContiguousRun reports whether hours contains a window of n entries in
// which every consecutive pair is exactly intervalMinutes apart. The input
// must be sorted ascending and deduplicated; a window spanning the right
// total elapsed time but with internal gaps does not count.
func HasContiguousRun(hours []TimeOfDay, intervalMinutes, n int) bool {
	if n < 1 || len(hours) < n {
		return false
	}

	for i := 0; i+n <= len(hours); i++ {
		run := true
		for j := i + 1; j < i+n; j++ {
			if hours[j]-hours[j-1] != TimeOfDay(intervalMinutes) {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}
