package cli

import (
	"fmt"
	"time"

	"github.com/pgvanniekerk/ezfork/internal/report"
	"github.com/pgvanniekerk/ezfork/internal/workload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newStressCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run independent fork-join regions concurrently against a shared counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(v)
			if err != nil {
				return err
			}

			regions := rt.cfg.Stress.Regions
			rt.logger.Debug("starting stress run",
				zap.Int("regions", regions),
				zap.Int("concurrency", rt.cfg.Stress.Concurrency),
			)

			var counter workload.Counter
			var g errgroup.Group
			if rt.cfg.Stress.Concurrency > 0 {
				g.SetLimit(rt.cfg.Stress.Concurrency)
			}

			start := time.Now()
			for i := 0; i < regions; i++ {
				g.Go(func() error {
					counter.Increment(rt.pool)
					return nil
				})
			}
			_ = g.Wait()
			elapsed := time.Since(start)

			err = rt.finish(cmd.OutOrStdout(), report.Report{
				Name:    fmt.Sprintf("Counter after %d fork-join regions", regions),
				Result:  int64(counter.Value()),
				Seconds: elapsed.Seconds(),
			})
			if err != nil {
				return err
			}
			if got := counter.Value(); got != regions {
				return errors.Errorf("lost updates: counter is %d, want %d", got, regions)
			}
			return nil
		},
	}

	cmd.Flags().Int("regions", 100, "number of fork-join regions to run")
	cmd.Flags().Int("concurrency", 0, "maximum regions in flight (0 is unlimited)")
	_ = v.BindPFlag("stress.regions", cmd.Flags().Lookup("regions"))
	_ = v.BindPFlag("stress.concurrency", cmd.Flags().Lookup("concurrency"))
	return cmd
}
