package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

// DefaultResetTokenRetention keeps expired reset tokens around for a day so
// a late redemption still reports "expired" rather than "invalid".
const DefaultResetTokenRetention = 24 * time.Hour

// HousekeepingService periodically deletes expired reset tokens.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(s store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:     s,
		Logger:    logger,
		Interval:  interval,
		Retention: DefaultResetTokenRetention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs cleanup now and then every Interval until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single cleanup pass and returns how many rows went.
func (s *HousekeepingService) RunOnce(ctx context.Context) int64 {
	cutoff := clock(s.Now).Add(-s.Retention)

	n, err := s.Store.ResetTokens().DeleteExpiredResetTokens(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired reset tokens", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "reset_tokens_deleted", n)
	return n
}
