package jobs

import (
	"context"
	"time"

	"car-rental-backend/internal/logger"
)

// ExpireOverdueBookings transitions blocking-status bookings whose return
// time has passed into expired. The same sweep runs inline before booking
// reads; this job only bounds staleness between reads. Running both
// concurrently is safe: the second pass finds nothing left to update.
func (jr *JobRunner) ExpireOverdueBookings() {
	jr.runWithRecovery("ExpireOverdueBookings", func() {
		ctx := context.Background()

		count, err := jr.store.ExpireOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to expire overdue bookings", "error", err)
			return
		}
		logger.Info("Expired overdue bookings", "count", count)
	})
}
