package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veksi/kuntadash/internal/plan"
	"github.com/veksi/kuntadash/internal/statfin"
)

// PlanOptions holds flags for the plan command.
type PlanOptions struct {
	*RootOptions
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plan <series-id>",
		Short: "Show the selection query planned for a series",
		Long: `Fetch the dataset's dimension metadata, resolve the series' concept,
and print the selection query that a fetch would submit, without
fetching any data. Useful for diagnosing why a concept resolves to an
unexpected code.

Example:
  kuntadash plan employment
  kuntadash plan population --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(opts, args[0], cmd)
		},
	}

	return cmd
}

func runPlan(opts *PlanOptions, seriesID string, cmd *cobra.Command) error {
	setupLogging(opts.RootOptions)

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	cs, ok := cfg.SeriesByID(seriesID)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown series %q", seriesID))
	}

	client := statfin.NewClient(cfg.DatasetURL)
	meta, err := client.Metadata(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to fetch metadata", err)
	}
	slog.Debug("metadata fetched", "table", meta.Title, "dimensions", len(meta.Variables))

	p, err := plan.Build(meta, cs.Selector, plan.Params{
		AreaDim:    cfg.AreaDim,
		YearDim:    cfg.YearDim,
		MetricHint: cfg.MetricHint,
		Regions:    cfg.RegionCodes(),
		Years:      cfg.TargetYears,
	})
	if errors.Is(err, plan.ErrNoMetric) {
		return WrapExitError(ExitFailure, fmt.Sprintf("series %q does not resolve in this dataset", seriesID), err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build plan", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(p)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "table: %s\n", meta.Title)
	if p.MetricDim != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "metric: %s = %s\n", p.MetricDim, p.MetricCode)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "metric: (single-concept table, no metric dimension)")
	}
	for _, dq := range p.Query.Query {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", dq.Code, strings.Join(dq.Selection.Values, ", "))
	}
	return nil
}
