package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"barberly/backend/internal/domain"
	"barberly/backend/internal/store"
)

type ScheduleRepo struct {
	db *bun.DB
}

func NewScheduleRepo(db *bun.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) GetSlotInterval(ctx context.Context, barberID uuid.UUID) (int, error) {
	var barber domain.Barber
	err := r.db.NewSelect().
		Model(&barber).
		Column("slot_interval_minutes").
		Where("id = ?", barberID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrNotFound
		}
		return 0, err
	}
	return barber.SlotIntervalMinutes, nil
}

func (r *ScheduleRepo) GetWorkingHours(ctx context.Context, barberID uuid.UUID, weekday int) (domain.WorkingHours, error) {
	var hours domain.WorkingHours
	err := r.db.NewSelect().
		Model(&hours).
		Where("barber_id = ?", barberID).
		Where("weekday = ?", weekday).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WorkingHours{}, store.ErrNotFound
		}
		return domain.WorkingHours{}, err
	}
	return hours, nil
}

func (r *ScheduleRepo) ListUnavailableHours(ctx context.Context, barberID uuid.UUID, date time.Time) ([]domain.UnavailableHour, error) {
	var rows []domain.UnavailableHour
	err := r.db.NewSelect().
		Model(&rows).
		Where("barber_id = ?", barberID).
		Where("date = ?", date.Format(time.DateOnly)).
		Where("is_available = ?", false).
		OrderExpr("hour ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleRepo) ListAllUnavailableHours(ctx context.Context, barberID uuid.UUID) ([]domain.UnavailableHour, error) {
	var rows []domain.UnavailableHour
	err := r.db.NewSelect().
		Model(&rows).
		Where("barber_id = ?", barberID).
		Where("is_available = ?", false).
		OrderExpr("date ASC, hour ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
