package cli

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/veksi/kuntadash/internal/statfin"
	"github.com/veksi/kuntadash/internal/store"
)

// FetchOptions holds flags for the fetch command.
type FetchOptions struct {
	*RootOptions
	Database string
	Series   []string
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FetchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the configured series from the statistics API",
		Long: `Fetch every configured series (or a subset) from the statistics API,
run the decode pipeline, and print the aggregated rows.

With --db, the run is also archived so 'kuntadash serve --db' and
'kuntadash runs' can work offline.

Example:
  kuntadash fetch
  kuntadash fetch --series population --series employment
  kuntadash fetch --db ./archive.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite archive (optional)")
	cmd.Flags().StringSliceVar(&opts.Series, "series", nil, "series ids to fetch (default: all)")

	return cmd
}

func runFetch(opts *FetchOptions, cmd *cobra.Command) error {
	setupLogging(opts.RootOptions)

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if len(opts.Series) > 0 {
		subset := cfg.Series[:0:0]
		for _, id := range opts.Series {
			s, ok := cfg.SeriesByID(id)
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown series %q", id))
			}
			subset = append(subset, s)
		}
		cfg.Series = subset
	}

	svc := statfin.NewService(statfin.NewClient(cfg.DatasetURL), cfg, slog.Default(), nil)
	snap := svc.FetchAll(cmd.Context())

	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open archive", err)
		}
		defer st.Close()

		for id, rows := range snap.Series {
			run := store.Run{ID: snap.RunID, SeriesID: id, FetchedAt: snap.FetchedAt}
			if err := st.WriteRun(cmd.Context(), run, rows); err != nil {
				return WrapExitError(ExitCommandError, "failed to archive run", err)
			}
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.Success(snap)
	}

	ids := make([]string, 0, len(snap.Series))
	for id := range snap.Series {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", snap.RunID)
	for _, id := range ids {
		rows := snap.Series[id]
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%d rows)\n", id, len(rows))
		for _, r := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d  %-12s %g\n", r.Year, r.Region, r.Value)
		}
	}
	return nil
}
