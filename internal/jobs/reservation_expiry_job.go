package jobs

import (
	"context"
	"log/slog"
	"time"

	"mescolis/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob releases locker compartments whose reservations have
// passed their hold window. Runs once a minute.
type ReservationExpiryJob struct {
	handler commands.ExpireReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationExpiryJob creates the job around the expiry command handler.
func NewReservationExpiryJob(handler commands.ExpireReservationsCommandHandler, logger *slog.Logger) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the expiry sweep on a one-minute schedule.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireReservationsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job misconfigured", "error", cmdErr)
			return
		}

		released, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", handleErr)
			return
		}
		if released > 0 {
			j.logger.InfoContext(ctx, "Expired reservations released", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
