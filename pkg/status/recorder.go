package status

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// sampleInterval is how often the matching API is probed.
const sampleInterval = time.Minute

// Prober reports whether the matching API is currently reachable.
type Prober interface {
	Healthy(ctx context.Context) bool
}

// Recorder probes the matching API on a schedule and feeds the results
// into the health log.
type Recorder struct {
	cron   *cron.Cron
	svc    *Service
	probe  Prober
	logger *log.Logger
}

// NewRecorder creates a new availability recorder
func NewRecorder(svc *Service, probe Prober, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}

	return &Recorder{
		cron:   cron.New(),
		svc:    svc,
		probe:  probe,
		logger: logger,
	}
}

// SetupJobs configures the scheduled probe
func (r *Recorder) SetupJobs() error {
	_, err := r.cron.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		healthy := r.probe.Healthy(ctx)
		if err := r.svc.RecordSample(ctx, healthy, sampleInterval); err != nil {
			r.logger.Printf("❌ Failed to record health sample: %v", err)
			return
		}

		if !healthy {
			r.logger.Printf("⚠️ Matching API probe failed")
		}
	})
	return err
}

// Start begins scheduled probing
func (r *Recorder) Start() {
	r.cron.Start()
}

// Stop halts scheduled probing
func (r *Recorder) Stop() {
	r.cron.Stop()
}
