package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barberly/backend/internal/service/availability"
)

type AvailabilityServer struct {
	svc availabilityService
	log *slog.Logger
}

type availabilityService interface {
	AvailableSlots(ctx context.Context, barberID uuid.UUID, date time.Time, durationMinutes int) ([]string, error)
	FullyBookedDates(ctx context.Context, barberID uuid.UUID, intervalMinutes, durationMinutes int) ([]string, error)
}

func NewAvailabilityServer(svc availabilityService, log *slog.Logger) *AvailabilityServer {
	if log == nil {
		log = slog.Default()
	}
	return &AvailabilityServer{
		svc: svc,
		log: log.With(slog.String("component", "http.availability")),
	}
}

func (s *AvailabilityServer) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/barbers/:barberId/slots", s.availableSlots)
		api.GET("/barbers/:barberId/fully-booked", s.fullyBookedDates)
	}
}

func (s *AvailabilityServer) availableSlots(c *gin.Context) {
	log := s.log.With(slog.String("handler", "availableSlots"))

	barberID, err := uuid.Parse(c.Param("barberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barber id"})
		return
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(c.Query("date")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	duration, ok := durationParam(c, "duration")
	if !ok {
		return
	}

	slots, err := s.svc.AvailableSlots(c.Request.Context(), barberID, date, duration)
	if err != nil {
		var vErr *availability.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("barber_id", barberID.String()))
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		log.Error("available slots failed", slog.Any("err", err), slog.String("barber_id", barberID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	log.Info(
		"available slots resolved",
		slog.String("barber_id", barberID.String()),
		slog.String("date", date.Format(time.DateOnly)),
		slog.Int("duration_minutes", duration),
		slog.Int("slots", len(slots)),
	)

	c.JSON(http.StatusOK, gin.H{
		"barberId": barberID,
		"date":     date.Format(time.DateOnly),
		"slots":    slots,
	})
}

func (s *AvailabilityServer) fullyBookedDates(c *gin.Context) {
	log := s.log.With(slog.String("handler", "fullyBookedDates"))

	barberID, err := uuid.Parse(c.Param("barberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barber id"})
		return
	}

	interval, err := strconv.Atoi(strings.TrimSpace(c.Query("interval")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interval must be a number of minutes"})
		return
	}

	duration, ok := durationParam(c, "duration")
	if !ok {
		return
	}

	dates, err := s.svc.FullyBookedDates(c.Request.Context(), barberID, interval, duration)
	if err != nil {
		var vErr *availability.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("barber_id", barberID.String()))
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		log.Error("fully booked dates failed", slog.Any("err", err), slog.String("barber_id", barberID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	log.Info(
		"fully booked dates resolved",
		slog.String("barber_id", barberID.String()),
		slog.Int("interval_minutes", interval),
		slog.Int("duration_minutes", duration),
		slog.Int("dates", len(dates)),
	)

	c.JSON(http.StatusOK, gin.H{
		"barberId": barberID,
		"dates":    dates,
	})
}

func durationParam(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return availability.DefaultDurationMinutes, true
	}
	duration, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number of minutes"})
		return 0, false
	}
	return duration, true
}
