package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/osse101/crimson/internal/config"
	"github.com/osse101/crimson/internal/database"
	"github.com/osse101/crimson/internal/database/postgres"
	"github.com/osse101/crimson/internal/directory"
	"github.com/osse101/crimson/internal/domain"
	"github.com/osse101/crimson/internal/logger"
	"github.com/osse101/crimson/internal/metrics"
	"github.com/osse101/crimson/internal/payout"
	"github.com/osse101/crimson/internal/report"
)

// payoutOptions are the parsed and validated flags of the payout command
type payoutOptions struct {
	Window      domain.TimeWindow
	Policy      payout.Policy
	Format      string `validate:"oneof=text json"`
	MetricsFile string
}

func newPayoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "payout",
		Usage: "compute the helper leaderboard and cookie payout for a time window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagStart,
				Usage:    "inclusive start of the window, e.g. 2026-02-01T00:00:00Z",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagEnd,
				Usage:    "exclusive end of the window, e.g. 2026-03-01T00:00:00Z",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  flagRate,
				Usage: "cookies paid per closed ticket (fixed-rate mode)",
			},
			&cli.Float64Flag{
				Name:  flagPool,
				Usage: "cookies split between helpers by share of tickets (pool mode)",
			},
			&cli.StringFlag{
				Name:  flagFormat,
				Usage: "report format: text or json",
				Value: formatText,
			},
			&cli.StringFlag{
				Name:    flagMetricsFile,
				Usage:   "write Prometheus metrics to this textfile after the run",
				EnvVars: []string{config.EnvMetricsFile},
			},
		},
		Action: runPayout,
	}
}

// parsePayoutOptions validates the flags before anything touches the network.
func parsePayoutOptions(c *cli.Context) (*payoutOptions, error) {
	var rate, pool *float64
	if c.IsSet(flagRate) {
		v := c.Float64(flagRate)
		rate = &v
	}
	if c.IsSet(flagPool) {
		v := c.Float64(flagPool)
		pool = &v
	}

	policy, err := payout.SelectPolicy(rate, pool)
	if err != nil {
		return nil, err
	}

	window, err := domain.ParseTimeWindow(c.String(flagStart), c.String(flagEnd))
	if err != nil {
		return nil, err
	}

	opts := &payoutOptions{
		Window:      window,
		Policy:      policy,
		Format:      c.String(flagFormat),
		MetricsFile: c.String(flagMetricsFile),
	}
	if err := config.GetValidator().Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(ErrMsgUnknownFormat, opts.Format))
	}
	return opts, nil
}

func runPayout(c *cli.Context) error {
	opts, err := parsePayoutOptions(c)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	if warnings, _ := config.ValidateEnvWithWarnings(); len(warnings) > 0 {
		for _, w := range warnings {
			logger.Warn(LogMsgConfigWarning, "warning", w)
		}
	}

	metricsFile := opts.MetricsFile
	if metricsFile == "" {
		metricsFile = cfg.MetricsFile
	}

	ctx := logger.WithRunID(c.Context, logger.GenerateRunID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartingPayout, "window", opts.Window.String(), "policy", opts.Policy.String())

	rep, runErr := executePayout(ctx, cfg, opts)

	recordRun(opts.Policy, runErr)
	if err := metrics.WriteTextfile(metricsFile); err != nil {
		log.Error(metrics.LogMsgFailedToWriteMetrics, "error", err)
	}
	if runErr != nil {
		return runErr
	}

	return writeReport(c.App.Writer, rep, opts.Format)
}

// executePayout wires the store and the directory and runs one payout.
func executePayout(ctx context.Context, cfg *config.Config, opts *payoutOptions) (*report.Report, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString: cfg.DatabaseURL,
		MaxConns:   cfg.DBMaxConns,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	resolver, err := directory.NewClient(directory.Config{
		BaseURL:           cfg.DirectoryBaseURL,
		APIKey:            cfg.DirectoryAPIKey,
		Timeout:           cfg.DirectoryTimeout,
		RequestsPerSecond: cfg.DirectoryRPS,
	})
	if err != nil {
		return nil, err
	}

	svc := payout.NewService(postgres.NewLeaderboardRepository(pool, cfg.QueryTimeout), resolver)
	return svc.Run(ctx, opts.Window, opts.Policy)
}

func recordRun(policy payout.Policy, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.RunsTotal.WithLabelValues(policy.Name(), result).Inc()
	metrics.LastRunTimestamp.Set(float64(time.Now().Unix()))
}

func writeReport(w io.Writer, rep *report.Report, format string) error {
	if rep == nil {
		return errors.New(ErrMsgNoReport)
	}
	switch format {
	case formatJSON:
		return rep.WriteJSON(w)
	default:
		return rep.WriteText(w)
	}
}
