package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

// DefaultDurationMinutes is assumed when a caller does not ask for a
// specific service duration.
const DefaultDurationMinutes = 30

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	repo  store.ScheduleRepository
	clock Clock
}

func NewService(repo store.ScheduleRepository, clock Clock) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// AvailableSlots returns the bookable slot start times ("HH:MM", ascending)
// for a barber on a calendar day, for a service of durationMinutes. A
// closed or unconfigured day is an empty result with a nil error;
// repository failures are returned as errors so callers can tell the two
// apart.
func (s *Service) AvailableSlots(ctx context.Context, barberID uuid.UUID, date time.Time, durationMinutes int) ([]string, error) {
	if barberID == uuid.Nil {
		return nil, validationError("barber_id is required")
	}
	if durationMinutes < 1 {
		return nil, validationError("duration must be at least 1 minute")
	}

	interval, err := s.repo.GetSlotInterval(ctx, barberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("get slot interval: %w", err)
	}
	if interval <= 0 {
		return []string{}, nil
	}

	hours, err := s.repo.GetWorkingHours(ctx, barberID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("get working hours: %w", err)
	}
	if hours.StartTime == "" || hours.EndTime == "" {
		return []string{}, nil
	}

	dayStart, err := domain.ParseTimeOfDay(hours.StartTime)
	if err != nil {
		return nil, fmt.Errorf("working hours start_time: %w", err)
	}
	dayEnd, err := domain.ParseTimeOfDay(hours.EndTime)
	if err != nil {
		return nil, fmt.Errorf("working hours end_time: %w", err)
	}

	baseSlots := domain.GenerateSlots(dayStart, dayEnd, interval)
	if len(baseSlots) == 0 {
		return []string{}, nil
	}

	records, err := s.repo.ListUnavailableHours(ctx, barberID, date)
	if err != nil {
		return nil, fmt.Errorf("list unavailable hours: %w", err)
	}
	taken := make(map[domain.TimeOfDay]struct{}, len(records))
	for _, rec := range records {
		hour, err := domain.ParseTimeOfDay(rec.Hour)
		if err != nil {
			return nil, fmt.Errorf("unavailable hour for %s: %w", date.Format(time.DateOnly), err)
		}
		taken[hour] = struct{}{}
	}

	now := s.clock.Now()
	isToday := sameCalendarDay(now, date)
	nowMinutes := domain.TimeOfDay(now.Hour()*60 + now.Minute())

	needed := domain.SlotsNeeded(durationMinutes, interval)
	out := make([]string, 0, len(baseSlots))

	for i := 0; i+needed <= len(baseSlots); i++ {
		window := baseSlots[i : i+needed]
		if windowOverlapsTaken(window, taken) {
			continue
		}
		// Same-day requests only offer slots that start strictly in the
		// future.
		if isToday && window[0] <= nowMinutes {
			continue
		}
		out = append(out, window[0].String())
	}

	return out, nil
}

// FullyBookedDates returns the calendar dates ("YYYY-MM-DD", ascending) on
// which the barber's taken hours form at least one unbroken grid run long
// enough to cover durationMinutes. Working hours are deliberately not
// consulted; only the taken hours themselves can mark a date as fully
// booked.
func (s *Service) FullyBookedDates(ctx context.Context, barberID uuid.UUID, intervalMinutes, durationMinutes int) ([]string, error) {
	if barberID == uuid.Nil {
		return nil, validationError("barber_id is required")
	}
	if intervalMinutes < 1 {
		return nil, validationError("interval must be at least 1 minute")
	}
	if durationMinutes < 1 {
		return nil, validationError("duration must be at least 1 minute")
	}

	records, err := s.repo.ListAllUnavailableHours(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("list unavailable hours: %w", err)
	}

	grouped := make(map[string][]domain.TimeOfDay)
	for _, rec := range records {
		hour, err := domain.ParseTimeOfDay(rec.Hour)
		if err != nil {
			return nil, fmt.Errorf("unavailable hour for %s: %w", rec.Date.Format(time.DateOnly), err)
		}
		day := rec.Date.Format(time.DateOnly)
		grouped[day] = append(grouped[day], hour)
	}

	needed := domain.SlotsNeeded(durationMinutes, intervalMinutes)
	out := make([]string, 0, len(grouped))
	for day, hours := range grouped {
		if domain.HasContiguousRun(sortUnique(hours), intervalMinutes, needed) {
			out = append(out, day)
		}
	}

	sort.Strings(out)
	return out, nil
}

func windowOverlapsTaken(window []domain.TimeOfDay, taken map[domain.TimeOfDay]struct{}) bool {
	for _, slot := range window {
		if _, ok := taken[slot]; ok {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sortUnique(hours []domain.TimeOfDay) []domain.TimeOfDay {
	sort.Slice(hours, func(i, j int) bool { return hours[i] < hours[j] })
	out := hours[:0]
	prev := domain.TimeOfDay(-1)
	for _, h := range hours {
		if h == prev {
			continue
		}
		out = append(out, h)
		prev = h
	}
	return out
}
