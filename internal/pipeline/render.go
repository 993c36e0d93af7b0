package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/numlab/distmatch/internal/model"
)

// previewLimit is the sequence length above which value previews are
// truncated to first two, middle, last two.
const previewLimit = 7

// Renderer formats the ranked report and the explicit-comparisons section.
type Renderer struct {
	out  io.Writer
	topK int
}

// NewRenderer creates a renderer printing at most topK ranked rows.
func NewRenderer(out io.Writer, topK int) *Renderer {
	if topK <= 0 {
		topK = 100
	}
	return &Renderer{out: out, topK: topK}
}

// RenderRanking prints the top-K results, best (smallest) score first.
func (r *Renderer) RenderRanking(results []model.ScoreResult) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "KS Score - Type - Property - Matched list")
	fmt.Fprintln(r.out)

	limit := r.topK
	if limit > len(results) {
		limit = len(results)
	}
	for _, res := range results[:limit] {
		fmt.Fprintf(r.out, "%g - %s - %s - %s\n",
			res.Score, res.Type, res.Property, FormatValues(res.Values))
	}
}

// RenderComparisons prints the user-requested (type, property) comparisons in
// a separate section. A pattern matching nothing in the index gets an explicit
// no-data row instead of being dropped.
func (r *Renderer) RenderComparisons(patterns []model.ComparePattern, results []model.ScoreResult) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Explicit comparisons:")
	fmt.Fprintln(r.out)

	for _, pattern := range patterns {
		matched := false
		for _, res := range results {
			if !pattern.Matches(model.Pair{Type: res.Type, Property: res.Property}) {
				continue
			}
			matched = true
			fmt.Fprintf(r.out, "%g - %s - %s - %s\n",
				res.Score, res.Type, res.Property, FormatValues(res.Values))
		}
		if !matched {
			fmt.Fprintf(r.out, "(no data) - %s\n", pattern)
		}
	}
}

// FormatValues renders a value preview. Sequences up to previewLimit elements
// print in full; longer ones show the first two, the middle and the last two
// elements with ellipsis markers in between. Presentation only.
func FormatValues(values []float64) string {
	n := len(values)
	if n <= previewLimit {
		parts := make([]string, n)
		for i, v := range values {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("[%g, %g, ..., %g, ..., %g, %g]",
		values[0], values[1], values[n/2], values[n-2], values[n-1])
}
