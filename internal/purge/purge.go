// Package purge removes bookings whose end time has aged past the retention
// threshold. It runs as a recurring background job and never interacts with
// booking validation: expiry is decided purely by timestamp.
package purge

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"roomclerk/internal/booking"
	appdb "roomclerk/internal/db"
	"roomclerk/internal/scheduler"
)

const runTimeout = 2 * time.Minute

// Service deletes expired bookings in one atomic sweep per run.
type Service struct {
	db        *appdb.DB
	retention time.Duration
	clock     booking.Clock
}

func NewService(database *appdb.DB, retention time.Duration, clock booking.Clock) *Service {
	if clock == nil {
		clock = booking.SystemClock{}
	}
	return &Service{
		db:        database,
		retention: retention,
		clock:     clock,
	}
}

// Run deletes every booking with end_time at or before now minus the
// retention duration. The delete is a single statement, so a run cannot
// leave a partial sweep behind.
func (s *Service) Run(ctx context.Context) error {
	threshold := s.clock.Now().Add(-s.retention)

	logger := zerolog.Ctx(ctx)
	logger.Info().Time("threshold", threshold).Msg("Deleting booking records with end_time at or before threshold")

	deleted, err := s.db.Queries.DeleteEndedAtOrBefore(ctx, threshold)
	if err != nil {
		return err
	}
	logger.Info().Int64("deleted", deleted).Msg("Purge run completed")
	return nil
}

// RegisterJob schedules the purge sweep at a fixed interval, delaying the
// first run so a fresh deploy does not purge immediately. A failed run only
// logs; the next scheduled run retries.
func RegisterJob(svc *Service, interval, startDelay time.Duration) error {
	jobName := "booking_purge"
	jobLogger := log.With().
		Str("component", "booking_purge_job").
		Str("job_name", jobName).
		Logger()

	_, err := scheduler.AddJob(jobName,
		gocron.DurationJob(interval),
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			defer cancel()
			ctx = jobLogger.WithContext(ctx)

			if err := svc.Run(ctx); err != nil {
				jobLogger.Error().Err(err).Msg("Purge run failed")
			}
		},
		gocron.WithStartAt(gocron.WithStartDateTime(time.Now().Add(startDelay))),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	jobLogger.Info().
		Dur("interval", interval).
		Dur("start_delay", startDelay).
		Msg("Booking purge job registered")
	return nil
}
