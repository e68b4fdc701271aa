package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pgvanniekerk/ezfork/internal/report"
	"github.com/pgvanniekerk/ezfork/internal/workload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newFibCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib [n]",
		Short: "Compute the nth Fibonacci number by naive fork-join recursion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrapf(err, "invalid n %q", args[0])
				}
				v.Set("fib.n", n)
			}

			rt, err := setup(v)
			if err != nil {
				return err
			}

			n := rt.cfg.Fib.N
			rt.logger.Debug("computing fibonacci number", zap.Int("n", n))

			start := time.Now()
			result := workload.Fib(rt.pool, n)
			elapsed := time.Since(start)

			return rt.finish(cmd.OutOrStdout(), report.Report{
				Name:    fmt.Sprintf("Fibonacci number #%d", n),
				Result:  int64(result),
				Seconds: elapsed.Seconds(),
			})
		},
	}

	cmd.Flags().Int("n", 39, "index of the Fibonacci number to compute")
	_ = v.BindPFlag("fib.n", cmd.Flags().Lookup("n"))
	return cmd
}
