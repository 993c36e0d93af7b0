// Package pipeline orchestrates the batch run: build both indices, load the
// input bag, score every group, rank and report.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/numlab/distmatch/internal/bag"
	"github.com/numlab/distmatch/internal/index"
	"github.com/numlab/distmatch/internal/model"
	"github.com/numlab/distmatch/internal/score"
	"github.com/numlab/distmatch/internal/triples"
)

// Pipeline drives one complete matching run.
type Pipeline struct {
	cfg *model.Config
	out io.Writer
}

// NewPipeline creates a pipeline writing its report to out.
func NewPipeline(cfg *model.Config, out io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, out: out}
}

// Run executes the six stages. bagArgs are the positional literal values,
// ignored when a CSV file is configured. Any returned error is fatal and the
// run emits no ranking.
func (p *Pipeline) Run(ctx context.Context, bagArgs []string, patterns []model.ComparePattern) error {
	// The bag is tiny next to the dumps; load it first so a bad column index
	// or literal token fails before minutes of index building.
	inputBag, err := p.loadBag(bagArgs)
	if err != nil {
		return err
	}
	if len(inputBag) == 0 {
		return fmt.Errorf("input bag is empty: no usable numeric values")
	}
	fmt.Fprintf(p.out, "[INFO] Unsorted input bag = %s\n", FormatValues(inputBag))
	sort.Float64s(inputBag)

	names := triples.NewLocalNames()

	fmt.Fprintln(p.out, "[1/6] Parsing types dump...")
	typesReader := triples.NewReader(p.cfg.Dumps.Types, p.cfg.Output.Verbose)
	typeIdx, err := index.BuildTypeIndex(typesReader, names)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, "[2/6] Building type dictionary...")
	fmt.Fprintf(p.out, "[INFO] %d resources, %d malformed lines skipped\n",
		len(typeIdx), typesReader.Skipped)

	fmt.Fprintln(p.out, "[3/6] Parsing properties dump...")
	propsReader := triples.NewReader(p.cfg.Dumps.Properties, p.cfg.Output.Verbose)
	propIdx, stats, err := index.BuildPropertyIndex(propsReader, typeIdx, names)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, "[4/6] Building property dictionary...")
	fmt.Fprintf(p.out, "[INFO] %d (type, property) pairs\n", len(propIdx))
	if p.cfg.Output.Verbose {
		fmt.Fprintf(p.out, "[INFO] skipped: %d malformed lines, %d non-numeric literals, %d untyped resources\n",
			propsReader.Skipped, stats.NonNumeric, stats.Untyped)
	}

	fmt.Fprintln(p.out, "[5/6] Computing KS scores...")
	scorer := score.NewScorer(p.cfg.Scoring.Workers)
	results := scorer.ScoreAll(ctx, inputBag, propIdx)

	fmt.Fprintln(p.out, "[6/6] Sorting results by KS score...")
	score.Rank(results)

	renderer := NewRenderer(p.out, p.cfg.Scoring.TopK)
	renderer.RenderRanking(results)
	if len(patterns) > 0 {
		renderer.RenderComparisons(patterns, results)
	}

	return nil
}

func (p *Pipeline) loadBag(bagArgs []string) ([]float64, error) {
	if p.cfg.CSV.File != "" {
		return bag.FromCSV(p.cfg.CSV.File, p.cfg.CSV.Separator, p.cfg.CSV.Column)
	}
	return bag.FromArgs(bagArgs)
}
