package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-mutclass/internal/classify"
	"github.com/inodb/vibe-mutclass/internal/output"
)

func newClassifyCmd() *cobra.Command {
	var (
		normal  string
		mutant  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "classify [normal mutant]",
		Short: "Classify a single normal/mutant sequence pair",
		Long: `Classify a single normal/mutant nucleotide sequence pair and print the label.

Sequences can be given with --normal/--mutant or as two positional arguments.`,
		Example: `  vibe-mutclass classify --normal AAATTTATGCTA --mutant AAATTTATGCCG
  vibe-mutclass classify ATCTTTACG ATCTTT
  vibe-mutclass classify -v AAATTTATGCTA AAATTTATGTTT`,
		Args: usageArgs(cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			flagsSet := cmd.Flags().Changed("normal") || cmd.Flags().Changed("mutant")
			switch {
			case len(args) == 2 && flagsSet:
				return &usageError{errors.New("give sequences as flags or as arguments, not both")}
			case len(args) == 2:
				normal, mutant = args[0], args[1]
			case len(args) == 1:
				return &usageError{errors.New("both normal and mutant sequences are required")}
			case !flagsSet:
				return &usageError{errors.New("no sequences given; use --normal and --mutant")}
			}

			if !verbose {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), classify.Classify(normal, mutant))
				return err
			}

			r := classify.Explain(normal, mutant)
			tw := output.NewTabWriter(cmd.OutOrStdout())
			if err := tw.WriteHeader(); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			if err := tw.Write(r); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&normal, "normal", "", "Normal nucleotide sequence")
	cmd.Flags().StringVar(&mutant, "mutant", "", "Mutant nucleotide sequence")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a tab-delimited record instead of the label only")

	return cmd
}
