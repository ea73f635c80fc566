package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-mutclass/internal/classify"
	"github.com/inodb/vibe-mutclass/internal/duckdb"
	"github.com/inodb/vibe-mutclass/internal/output"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the DuckDB result cache",
		Example: `  vibe-mutclass cache stats --path results.duckdb
  vibe-mutclass cache list --label "Nonsense mutation"
  vibe-mutclass cache clear`,
	}

	cmd.PersistentFlags().String("path", "", "DuckDB result cache path (default: cache.path from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show stored results per label and recorded batch runs",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCache(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			return writeCacheStats(cmd.OutOrStdout(), store)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all stored results",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCache(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.ClearResults(); err != nil {
				return fmt.Errorf("clearing results: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared results in %s\n", store.Path())
			return nil
		},
	})

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored results with a given label",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			if label == "" {
				return &usageError{errors.New("--label is required")}
			}
			store, err := openCache(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			results, err := store.SearchByLabel(label)
			if err != nil {
				return err
			}
			tw := output.NewTabWriter(cmd.OutOrStdout())
			if err := tw.WriteHeader(); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			for _, r := range results {
				if err := tw.Write(r); err != nil {
					return fmt.Errorf("writing result: %w", err)
				}
			}
			return tw.Flush()
		},
	}
	list.Flags().String("label", "", `Classification label, e.g. "Nonsense mutation"`)
	cmd.AddCommand(list)

	return cmd
}

// openCache opens the store named by --path, falling back to cache.path.
func openCache(cmd *cobra.Command) (*duckdb.Store, error) {
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = viper.GetString("cache.path")
	}
	if path == "" {
		return nil, &usageError{errors.New("no cache path; use --path or set cache.path")}
	}

	store, err := duckdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result cache: %w", err)
	}
	return store, nil
}

func writeCacheStats(w io.Writer, store *duckdb.Store) error {
	counts, err := store.CountByLabel()
	if err != nil {
		return err
	}
	runs, err := store.Runs()
	if err != nil {
		return err
	}

	slices.SortStableFunc(counts, func(a, b duckdb.LabelCount) int {
		return classify.LabelRank(a.Label) - classify.LabelRank(b.Label)
	})

	var total int64
	for _, lc := range counts {
		total += lc.Count
	}

	fmt.Fprintf(w, "Results: %d\n", total)
	for _, lc := range counts {
		fmt.Fprintf(w, "  %-70s %6d\n", lc.Label, lc.Count)
	}
	fmt.Fprintf(w, "Runs: %d\n", len(runs))
	for _, r := range runs {
		fmt.Fprintf(w, "  %s\t%d bytes\t%s\t%d pairs\n",
			r.Input.Path, r.Input.Size, r.Input.ModTime.Format("2006-01-02 15:04:05"), r.Pairs)
	}
	return nil
}
