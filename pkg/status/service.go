package status

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
	"github.com/snapjobs/snapjobs-back/pkg/models"
)

// Service accumulates availability samples of the matching API into
// per-day health log rows and serves the public uptime history.
type Service struct {
	db *ent.Client
}

// NewService creates a new status service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// RecordSample folds one probe result into today's health log row. The
// interval is how much wall time the sample accounts for.
func (s *Service) RecordSample(ctx context.Context, healthy bool, interval time.Duration) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	seconds := int(interval.Seconds())

	uptimeSeconds := 0
	if healthy {
		uptimeSeconds = seconds
	}

	row, err := s.db.HealthLog.Query().
		Where(healthlog.LogDateEQ(day)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query health log: %w", err)
		}

		_, err := s.db.HealthLog.Create().
			SetLogDate(day).
			SetTotalSeconds(seconds).
			SetTotalUptimeSeconds(uptimeSeconds).
			SetStatus(statusFor(uptimeSeconds, seconds)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create health log: %w", err)
		}
		return nil
	}

	total := row.TotalSeconds + seconds
	uptime := row.TotalUptimeSeconds + uptimeSeconds

	if err := s.db.HealthLog.UpdateOne(row).
		SetTotalSeconds(total).
		SetTotalUptimeSeconds(uptime).
		SetStatus(statusFor(uptime, total)).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update health log: %w", err)
	}

	return nil
}

// History returns up to days of uptime history, newest first. Days with
// no samples are simply absent.
func (s *Service) History(ctx context.Context, days int) ([]models.UptimeDay, error) {
	since := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -days)

	rows, err := s.db.HealthLog.Query().
		Where(healthlog.LogDateGTE(since)).
		Order(ent.Desc(healthlog.FieldLogDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query health history: %w", err)
	}

	history := make([]models.UptimeDay, 0, len(rows))
	for _, row := range rows {
		uptime := 100.0
		if row.TotalSeconds > 0 {
			uptime = math.Round(float64(row.TotalUptimeSeconds)/float64(row.TotalSeconds)*10000) / 100
		}
		history = append(history, models.UptimeDay{
			Date:   row.LogDate.Format("2006-01-02"),
			Uptime: uptime,
			Status: string(row.Status),
		})
	}

	return history, nil
}

// statusFor classifies a day from its uptime ratio
func statusFor(uptimeSeconds, totalSeconds int) healthlog.Status {
	if totalSeconds == 0 {
		return healthlog.StatusHealthy
	}
	ratio := float64(uptimeSeconds) / float64(totalSeconds)
	switch {
	case ratio >= 0.99:
		return healthlog.StatusHealthy
	case ratio >= 0.90:
		return healthlog.StatusDegraded
	default:
		return healthlog.StatusError
	}
}
