package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numlab/distmatch/internal/score"
)

var (
	bagA []float64
	bagB []float64
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Report similarity metrics for two bags of numbers",
	Long: `Compare prints every supported similarity metric for two given bags of
numerical values: numeric Jaccard (full range and first-to-third quartile),
Euclidean distance over distribution feature vectors, and the two-sample KS
statistic. Metrics that cannot be computed for the given bags report ERROR.

Example:
  distmatch compare -a 1,2,3,4 -b 2,3,4,5`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Float64SliceVarP(&bagA, "bag-a", "a", nil, "first bag of numerical values")
	compareCmd.Flags().Float64SliceVarP(&bagB, "bag-b", "b", nil, "second bag of numerical values")
	_ = compareCmd.MarkFlagRequired("bag-a")
	_ = compareCmd.MarkFlagRequired("bag-b")
}

func runCompare(cmd *cobra.Command, args []string) error {
	fmt.Println()
	for _, m := range score.AllMetrics(bagA, bagB) {
		if m.Err != nil {
			fmt.Printf("%s: ERROR (%v)\n", m.Name, m.Err)
			continue
		}
		fmt.Printf("%s: %g\n", m.Name, m.Value)
	}
	fmt.Println()
	return nil
}
