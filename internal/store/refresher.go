package store

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"aquacast/internal/logger"
)

// Refresher re-fetches the forecast on a cron schedule, every 6 hours
// by default. Stop clears the schedule on teardown; an in-flight fetch
// is bounded by the fetcher's own timeout, so nothing else needs
// cancelling.
type Refresher struct {
	store *ForecastStore
	cron  *cron.Cron
	log   *logger.Logger
}

// NewRefresher creates a refresher for the given store.
func NewRefresher(store *ForecastStore) *Refresher {
	return &Refresher{
		store: store,
		cron:  cron.New(),
		log:   logger.Component("refresher"),
	}
}

// Start registers the schedule and begins running it.
func (r *Refresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		snap := r.store.Refresh(ctx)
		r.log.Info("scheduled refresh complete", map[string]any{"source": string(snap.Source)})
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	r.cron.Start()
	r.log.Info("refresh schedule started", map[string]any{"spec": spec})
	return nil
}

// Stop clears the schedule and waits for a running job to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("refresh schedule stopped")
}
