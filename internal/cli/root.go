// Package cli implements the ezfork command line.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pgvanniekerk/ezfork/internal/config"
	"github.com/pgvanniekerk/ezfork/internal/logger"
	"github.com/pgvanniekerk/ezfork/internal/report"
	"github.com/pgvanniekerk/ezfork/pkg/forkjoin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Execute runs the ezfork command and exits the process on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree, writing reports to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "ezfork",
		Short:         "Run fork-join computations on a fixed-size worker pool",
		SilenceUsage:  true,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.Int("workers", 0, "worker count including the calling goroutine (0 uses the CPU count)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("output", config.OutputText, "report format (text, yaml)")
	flags.Bool("lock-os-thread", false, "pin every worker to its own OS thread")
	for key, flag := range map[string]string{
		"config":         "config",
		"workers":        "workers",
		"log_level":      "log-level",
		"output":         "output",
		"lock_os_thread": "lock-os-thread",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newFibCommand(v), newStressCommand(v))
	return rootCmd
}

// session holds everything a subcommand needs to run a computation.
type session struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	pool     forkjoin.Pool
}

// setup loads the configuration and starts a pool for a subcommand.
func setup(v *viper.Viper) (*session, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []forkjoin.Option{
		forkjoin.WithWorkers(cfg.Workers),
		forkjoin.WithLogger(log),
	}
	if cfg.LockOSThread {
		opts = append(opts, forkjoin.WithLockOSThread())
	}

	registry := prometheus.NewRegistry()
	pool, err := forkjoin.New(append(opts, forkjoin.WithMetrics(registry, "ezfork"))...)
	if err != nil {
		_ = log.Sync()
		return nil, errors.Wrap(err, "starting worker pool")
	}

	return &session{
		cfg:      cfg,
		logger:   log,
		registry: registry,
		pool:     pool,
	}, nil
}

// finish shuts the pool down and writes r with the pool's metrics attached.
func (rt *session) finish(out io.Writer, r report.Report) error {
	defer func() { _ = rt.logger.Sync() }()

	r.Workers = rt.pool.Shutdown()

	values, err := report.Gather(rt.registry)
	if err != nil {
		return err
	}
	r.Metrics = values

	return report.Write(out, rt.cfg.Output, r)
}
