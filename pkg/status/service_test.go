package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/enttest"
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
)

func setupStatus(t *testing.T) (*ent.Client, *Service) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func TestRecordSample_AccumulatesWithinDay(t *testing.T) {
	client, svc := setupStatus(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordSample(ctx, true, time.Minute))
	require.NoError(t, svc.RecordSample(ctx, true, time.Minute))
	require.NoError(t, svc.RecordSample(ctx, false, time.Minute))

	rows, err := client.HealthLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "samples from one day share a row")

	assert.Equal(t, 180, rows[0].TotalSeconds)
	assert.Equal(t, 120, rows[0].TotalUptimeSeconds)
}

func TestRecordSample_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		healthy int
		failed  int
		want    healthlog.Status
	}{
		{"all healthy", 100, 0, healthlog.StatusHealthy},
		{"degraded", 95, 5, healthlog.StatusDegraded},
		{"error", 50, 50, healthlog.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, svc := setupStatus(t)
			ctx := context.Background()

			for i := 0; i < tt.healthy; i++ {
				require.NoError(t, svc.RecordSample(ctx, true, time.Minute))
			}
			for i := 0; i < tt.failed; i++ {
				require.NoError(t, svc.RecordSample(ctx, false, time.Minute))
			}

			row, err := client.HealthLog.Query().Only(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, row.Status)
		})
	}
}

func TestHistory(t *testing.T) {
	client, svc := setupStatus(t)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// Two past days seeded directly, newest last
	_, err := client.HealthLog.Create().
		SetLogDate(today.AddDate(0, 0, -2)).
		SetTotalSeconds(86400).
		SetTotalUptimeSeconds(86400).
		SetStatus(healthlog.StatusHealthy).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.HealthLog.Create().
		SetLogDate(today.AddDate(0, 0, -1)).
		SetTotalSeconds(86400).
		SetTotalUptimeSeconds(43200).
		SetStatus(healthlog.StatusError).
		Save(ctx)
	require.NoError(t, err)

	history, err := svc.History(ctx, 90)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first
	assert.Equal(t, today.AddDate(0, 0, -1).Format("2006-01-02"), history[0].Date)
	assert.Equal(t, 50.0, history[0].Uptime)
	assert.Equal(t, "error", history[0].Status)
	assert.Equal(t, 100.0, history[1].Uptime)
}

func TestHistory_WindowExcludesOldDays(t *testing.T) {
	client, svc := setupStatus(t)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	_, err := client.HealthLog.Create().
		SetLogDate(today.AddDate(0, 0, -120)).
		SetTotalSeconds(86400).
		SetTotalUptimeSeconds(86400).
		SetStatus(healthlog.StatusHealthy).
		Save(ctx)
	require.NoError(t, err)

	history, err := svc.History(ctx, 90)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistory_Empty(t *testing.T) {
	_, svc := setupStatus(t)

	history, err := svc.History(context.Background(), 90)
	require.NoError(t, err)
	assert.Empty(t, history)
}
