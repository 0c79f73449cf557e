package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Barber struct {
	bun.BaseModel `bun:"table:barbers"`

	ID                  uuid.UUID `bun:"id,pk,type:uuid"`
	Name                string    `bun:"name,notnull"`
	SlotIntervalMinutes int       `bun:"slot_interval_minutes,notnull"`
	CreatedAt           time.Time `bun:"created_at,notnull"`
	UpdatedAt           time.Time `bun:"updated_at,notnull"`
}

func (b *Barber) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if b.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			b.ID = id
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		if b.UpdatedAt.IsZero() {
			b.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		b.UpdatedAt = now
	}
	return nil
}

// WorkingHours is the open/close window for one weekday. Weekday is
// 0 = Sunday through 6 = Saturday, matching time.Weekday. A barber with no
// row for a weekday is closed that day.
type WorkingHours struct {
	bun.BaseModel `bun:"table:barber_working_hours"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	BarberID  uuid.UUID `bun:"barber_id,notnull,type:uuid"`
	Weekday   int16     `bun:"weekday,notnull"`
	StartTime string    `bun:"start_time,notnull"`
	EndTime   string    `bun:"end_time,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

func (w *WorkingHours) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if w.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			w.ID = id
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		if w.UpdatedAt.IsZero() {
			w.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		w.UpdatedAt = now
	}
	return nil
}

// UnavailableHour marks a single (date, hour) grid position as taken for a
// barber, whether by a booking or a manual block-out. Rows with
// IsAvailable true are ignored by the availability queries.
type UnavailableHour struct {
	bun.BaseModel `bun:"table:availability"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	BarberID    uuid.UUID `bun:"barber_id,notnull,type:uuid"`
	Date        time.Time `bun:"date,notnull,type:date"`
	Hour        string    `bun:"hour,notnull"`
	IsAvailable bool      `bun:"is_available,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func (u *UnavailableHour) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if u.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			u.ID = id
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		if u.UpdatedAt.IsZero() {
			u.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		u.UpdatedAt = now
	}
	return nil
}
