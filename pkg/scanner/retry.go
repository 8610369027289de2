package scanner

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"event-checkin-backend/models"
	"event-checkin-backend/repository"
)

// HistoryRetrier re-attempts scan history appends that failed after the
// status update already committed. Best effort with bounded backoff, an
// entry that still cannot be written after the last attempt is logged
// and lost.
type HistoryRetrier struct {
	history repository.ScanHistoryRepository
	wg      sync.WaitGroup
}

func NewHistoryRetrier(history repository.ScanHistoryRepository) *HistoryRetrier {
	return &HistoryRetrier{history: history}
}

func (r *HistoryRetrier) Enqueue(entry *models.ScanHistoryEntry) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		backoff := retry.WithMaxRetries(5, retry.NewExponential(1*time.Second))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if _, err := r.history.CreateEntry(ctx, entry); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			log.Printf("ERROR: giving up on scan history entry for attendee %s (%s %s): %v",
				entry.AttendeeID.Hex(), entry.ScanType, entry.Venue, err)
		}
	}()
}

// Wait blocks until all queued retries have finished.
func (r *HistoryRetrier) Wait() {
	r.wg.Wait()
}
