package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/numlab/distmatch/internal/model"
	"github.com/numlab/distmatch/internal/pipeline"
)

var (
	typesPath    string
	propsPath    string
	csvFile      string
	csvSeparator string
	csvColumn    int
	topK         int
	workers      int
	compareWith  []string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [NUMBER...]",
	Short: "Match a bag of numbers against (type, property) value distributions",
	Long: `Match builds a resource-to-types index and a (type, property)-to-values
index from the two dump files, then scores the input bag against every value
group with the two-sample KS statistic and prints the closest pairs.

The input bag is either the positional numeric arguments or one column of a
delimited file (--csv-file with --csv-column); the two modes are mutually
exclusive.

Example:
  distmatch match --types instance_types_en.ttl --properties infobox_properties_en.ttl 500 520 1200
  distmatch match --types types.ttl --properties props.ttl --csv-file table.tsv --csv-column 2
  distmatch match --types types.ttl --properties props.ttl 42 --compare-with "Settlement: populationDensity"`,
	Args: cobra.ArbitraryArgs,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	// Dump flags
	matchCmd.Flags().StringVar(&typesPath, "types", "", "instance-types dump path (required)")
	matchCmd.Flags().StringVar(&propsPath, "properties", "", "infobox-properties dump path (required)")
	_ = matchCmd.MarkFlagRequired("types")
	_ = matchCmd.MarkFlagRequired("properties")

	// Input bag flags
	matchCmd.Flags().StringVar(&csvFile, "csv-file", "", "delimited file to read the input bag from")
	matchCmd.Flags().StringVar(&csvSeparator, "csv-separator", "\t", "cell separator in the --csv-file")
	matchCmd.Flags().IntVar(&csvColumn, "csv-column", 0, "zero-based column index in the --csv-file")

	// Scoring flags
	matchCmd.Flags().IntVarP(&topK, "top-k", "k", 100, "number of (type, property) pairs to output")
	matchCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent scoring workers")
	matchCmd.Flags().StringArrayVar(&compareWith, "compare-with", nil,
		`explicit "TYPE: PROPERTY" comparison, repeatable; either side may be empty meaning any`)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if csvFile != "" && len(args) > 0 {
		return fmt.Errorf("literal numbers and --csv-file are mutually exclusive")
	}
	if csvFile == "" && len(args) == 0 {
		return fmt.Errorf("no input bag: pass numbers or --csv-file")
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Dumps.Types = typesPath
	cfg.Dumps.Properties = propsPath
	cfg.CSV.File = csvFile
	cfg.CSV.Separator = csvSeparator
	cfg.CSV.Column = csvColumn
	cfg.Scoring.TopK = topK
	cfg.Scoring.Workers = workers
	cfg.Output.Verbose = verbose

	patterns := make([]model.ComparePattern, 0, len(compareWith))
	for _, raw := range compareWith {
		patterns = append(patterns, model.ParseComparePattern(raw))
	}

	p := pipeline.NewPipeline(cfg, os.Stdout)
	if err := p.Run(context.Background(), args, patterns); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	return nil
}
