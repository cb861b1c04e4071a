package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/crimson/internal/domain"
	"github.com/osse101/crimson/internal/logger"
	"github.com/osse101/crimson/internal/metrics"
	"github.com/osse101/crimson/internal/report"
	"github.com/osse101/crimson/internal/repository"
)

// Resolver maps a helper ID to their directory identity
type Resolver interface {
	Resolve(ctx context.Context, helperID string) (domain.ResolvedIdentity, error)
}

// Service defines the interface for payout runs
type Service interface {
	// Run fetches the leaderboard for window, allocates cookies under policy
	// and resolves every helper. Any failure aborts the run and no report is
	// returned.
	Run(ctx context.Context, window domain.TimeWindow, policy Policy) (*report.Report, error)
}

// service implements the Service interface
type service struct {
	repo     repository.Leaderboard
	resolver Resolver
}

// NewService creates a new payout service
func NewService(repo repository.Leaderboard, resolver Resolver) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
	}
}

// Run executes one payout sequentially: fetch, allocate, sort, resolve, report.
func (s *service) Run(ctx context.Context, window domain.TimeWindow, policy Policy) (*report.Report, error) {
	log := logger.FromContext(ctx)

	if policy == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoModeSet)
	}

	started := time.Now()
	activity, err := s.repo.HelperActivity(ctx, window)
	observeStage(StageFetch, started)
	if err != nil {
		log.Error(LogMsgFailedToFetchLeaderboard, "error", err)
		return nil, fmt.Errorf(ErrMsgFetchLeaderboardFailed, err)
	}
	log.Info(LogMsgFetchedLeaderboard, "helpers", len(activity), "tickets", activity.TotalTickets(), "window", window.String())
	if len(activity) == 0 {
		log.Warn(LogMsgEmptyLeaderboard, "window", window.String())
	}

	started = time.Now()
	result, err := Allocate(activity, policy)
	observeStage(StageAllocate, started)
	if err != nil {
		log.Error(LogMsgFailedToAllocate, "error", err, "policy", policy.Name())
		return nil, fmt.Errorf(ErrMsgAllocateFailed, err)
	}
	log.Info(LogMsgAllocatedPayout, "policy", policy.Name(), "total_reward", result.Total())

	entries := Entries(activity, result)

	started = time.Now()
	lines := make([]report.Line, 0, len(entries))
	for _, entry := range entries {
		identity, err := s.resolver.Resolve(ctx, entry.HelperID)
		if err != nil {
			observeStage(StageResolve, started)
			log.Error(LogMsgFailedToResolveHelper, "error", err, "helper_id", entry.HelperID, "resolved", len(lines), "remaining", len(entries)-len(lines))
			return nil, fmt.Errorf(ErrMsgResolveHelperFailed, entry.HelperID, err)
		}
		log.Debug(LogMsgResolvedHelper, "helper_id", entry.HelperID, "display_name", identity.DisplayName)

		lines = append(lines, report.Line{
			Identity: identity,
			Tickets:  entry.Tickets,
			Reward:   entry.Reward,
		})
	}
	observeStage(StageResolve, started)

	rep := report.Build(window, policy.String(), lines)

	metrics.HelpersPaid.Set(float64(len(rep.Rows)))
	metrics.TicketsClosed.Set(float64(rep.TotalTickets))
	metrics.CookiesDistributed.Set(rep.TotalReward)

	log.Info(LogMsgPayoutComplete, "helpers", len(rep.Rows), "total_tickets", rep.TotalTickets, "total_reward", rep.TotalReward)
	return rep, nil
}

func observeStage(stage string, started time.Time) {
	metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(started).Seconds())
}
