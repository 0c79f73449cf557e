package domain

import "testing"

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	v, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) error: %v", s, err)
	}
	return v
}

func formatSlots(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		interval int
		want     []string
	}{
		{
			name:     "half hour grid over a morning",
			start:    "09:00",
			end:      "12:00",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "last slot may overrun the closing time",
			start:    "09:00",
			end:      "10:00",
			interval: 45,
			want:     []string{"09:00", "09:45"},
		},
		{
			name:     "single slot day",
			start:    "09:00",
			end:      "09:15",
			interval: 60,
			want:     []string{"09:00"},
		},
		{
			name:     "start equals end",
			start:    "09:00",
			end:      "09:00",
			interval: 30,
			want:     nil,
		},
		{
			name:     "start after end",
			start:    "12:00",
			end:      "09:00",
			interval: 30,
			want:     nil,
		},
		{
			name:     "non-positive interval",
			start:    "09:00",
			end:      "12:00",
			interval: 0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(mustTime(t, tt.start), mustTime(t, tt.end), tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), formatSlots(got))
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Fatalf("slot[%d] = %q, want %q", i, got[i].String(), tt.want[i])
				}
			}
		})
	}
}

func TestGenerateSlots_GridProperties(t *testing.T) {
	start := mustTime(t, "08:15")
	end := mustTime(t, "17:40")
	interval := 25

	slots := GenerateSlots(start, end, interval)
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}
	if slots[0] != start {
		t.Fatalf("slot[0] = %v, want %v", slots[0], start)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i]-slots[i-1] != TimeOfDay(interval) {
			t.Fatalf("slot[%d]-slot[%d] = %d, want %d", i, i-1, slots[i]-slots[i-1], interval)
		}
	}
	last := slots[len(slots)-1]
	if last >= end {
		t.Fatalf("last slot %v not before end %v", last, end)
	}
	if last+TimeOfDay(interval) < end {
		t.Fatalf("slot after %v would still fit before %v", last, end)
	}
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		duration int
		interval int
		want     int
	}{
		{duration: 30, interval: 30, want: 1},
		{duration: 15, interval: 30, want: 1},
		{duration: 31, interval: 30, want: 2},
		{duration: 60, interval: 30, want: 2},
		{duration: 61, interval: 30, want: 3},
		{duration: 90, interval: 45, want: 2},
		{duration: 0, interval: 30, want: 1},
	}

	for _, tt := range tests {
		if got := SlotsNeeded(tt.duration, tt.interval); got != tt.want {
			t.Fatalf("SlotsNeeded(%d, %d) = %d, want %d", tt.duration, tt.interval, got, tt.want)
		}
	}
}

func TestSlotsNeeded_MonotonicInDuration(t *testing.T) {
	prev := 0
	for duration := 1; duration <= 240; duration++ {
		n := SlotsNeeded(duration, 30)
		if n < prev {
			t.Fatalf("SlotsNeeded(%d, 30) = %d, less than %d for shorter duration", duration, n, prev)
		}
		prev = n
	}
}

func TestHasContiguousRun(t *testing.T) {
	hours := func(ss ...string) []TimeOfDay {
		out := make([]TimeOfDay, 0, len(ss))
		for _, s := range ss {
			out = append(out, mustTime(t, s))
		}
		return out
	}

	tests := []struct {
		name     string
		hours    []TimeOfDay
		interval int
		n        int
		want     bool
	}{
		{
			name:     "adjacent pair",
			hours:    hours("09:00", "09:30"),
			interval: 30,
			n:        2,
			want:     true,
		},
		{
			name:     "gap between the pair",
			hours:    hours("09:00", "10:00"),
			interval: 30,
			n:        2,
			want:     false,
		},
		{
			name:     "run hidden in the middle",
			hours:    hours("08:00", "10:00", "10:30", "11:00", "14:00"),
			interval: 30,
			n:        3,
			want:     true,
		},
		{
			name:     "scattered hours never form a run",
			hours:    hours("08:00", "09:00", "10:00", "11:00"),
			interval: 30,
			n:        2,
			want:     false,
		},
		{
			name:     "single slot run",
			hours:    hours("13:00"),
			interval: 30,
			n:        1,
			want:     true,
		},
		{
			name:     "fewer hours than the run length",
			hours:    hours("09:00"),
			interval: 30,
			n:        2,
			want:     false,
		},
		{
			name:     "empty input",
			hours:    nil,
			interval: 30,
			n:        1,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasContiguousRun(tt.hours, tt.interval, tt.n); got != tt.want {
				t.Fatalf("HasContiguousRun = %v, want %v", got, tt.want)
			}
		})
	}
}
