package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-mutclass/internal/classify"
	"github.com/inodb/vibe-mutclass/internal/duckdb"
	"github.com/inodb/vibe-mutclass/internal/output"
	"github.com/inodb/vibe-mutclass/internal/pairs"
)

func newBatchCmd() *cobra.Command {
	var (
		outputFile  string
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "batch [options] <input-file>",
		Short: "Classify sequence pairs from a tab-delimited file",
		Long: `Classify every sequence pair in a tab-delimited file.

Each line holds "normal<TAB>mutant" or "id<TAB>normal<TAB>mutant".
Lines starting with '#' are skipped. Gzipped input is detected automatically.
Use '-' to read from stdin.`,
		Example: `  vibe-mutclass batch pairs.tsv
  vibe-mutclass batch -o results.tsv --summary pairs.tsv.gz
  vibe-mutclass batch --cache ~/.vibe-mutclass/results.duckdb pairs.tsv
  cat pairs.tsv | vibe-mutclass batch -`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], outputFile, showSummary)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntP("workers", "w", 0, "Number of classification workers (default: number of CPUs)")
	cmd.Flags().String("cache", "", "DuckDB result cache path (disabled if empty)")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print per-label counts to stderr")

	viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))

	return cmd
}

func runBatch(cmd *cobra.Command, inputPath, outputFile string, showSummary bool) error {
	parser, err := pairs.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	c := classify.NewClassifier()
	c.SetLogger(logger)
	c.SetWorkers(viper.GetInt("workers"))

	var store *duckdb.Store
	if cachePath := viper.GetString("cache.path"); cachePath != "" {
		store, err = duckdb.Open(cachePath)
		if err != nil {
			return fmt.Errorf("opening result cache: %w", err)
		}
		defer store.Close()
		c.SetCache(store)
		logger.Info("using result cache", zap.String("path", cachePath))
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	summary := output.NewSummary(output.NewTabWriter(out))
	if err := summary.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := c.ClassifyAll(parser, summary); err != nil {
		return err
	}

	if store != nil && inputPath != "-" {
		recordRun(store, inputPath, summary.Total())
	}

	if showSummary {
		summary.WriteSummary(cmd.ErrOrStderr())
	}

	return nil
}

// recordRun stores the input fingerprint; failures are logged, not returned.
func recordRun(store *duckdb.Store, inputPath string, total int) {
	fp, err := duckdb.StatFile(inputPath)
	if err != nil {
		logger.Warn("could not stat input", zap.String("path", inputPath), zap.Error(err))
		return
	}

	seen, err := store.HasRun(fp)
	if err != nil {
		logger.Warn("could not query previous runs", zap.Error(err))
	} else if seen {
		logger.Info("input was classified before", zap.String("path", inputPath))
	}

	if err := store.RecordRun(fp, total); err != nil {
		logger.Warn("could not record run", zap.Error(err))
	}
}
