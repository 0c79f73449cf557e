package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberly/backend/internal/domain"
)

// ScheduleRepository is the persistence collaborator behind the
// availability queries. Missing configuration (no barber, no working-hours
// row for the weekday) is reported as ErrNotFound, never as a zero value.
type ScheduleRepository interface {
	GetSlotInterval(ctx context.Context, barberID uuid.UUID) (int, error)
	GetWorkingHours(ctx context.Context, barberID uuid.UUID, weekday int) (domain.WorkingHours, error)

	ListUnavailableHours(ctx context.Context, barberID uuid.UUID, date time.Time) ([]domain.UnavailableHour, error)
	ListAllUnavailableHours(ctx context.Context, barberID uuid.UUID) ([]domain.UnavailableHour, error)
}
