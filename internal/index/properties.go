package index

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/numlab/distmatch/internal/model"
	"github.com/numlab/distmatch/internal/triples"
)

// PropertyStats reports what the property pass dropped.
type PropertyStats struct {
	NonNumeric int64 // assertions whose literal did not parse as a number
	Untyped    int64 // numeric assertions on resources absent from the type index
}

// BuildPropertyIndex streams an infobox-properties dump, keeping numeric
// literals on resources known to the type index. Every value is appended under
// (type, property) for each type of its resource; repeated assertions all
// count. Each group's values are sorted ascending exactly once, after the pass.
func BuildPropertyIndex(r *triples.Reader, typeIdx model.TypeIndex, names *triples.LocalNames) (model.PropertyIndex, PropertyStats, error) {
	idx := make(model.PropertyIndex)
	var stats PropertyStats

	err := r.Each(func(stmt model.Statement) {
		if !stmt.IsLiteral {
			return
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(stmt.Object), 64)
		if err != nil || math.IsNaN(value) {
			// NaN literals parse but compare unequal to everything, which
			// would stall the scorer's merge sweep. Dropped like any other
			// non-numeric literal.
			stats.NonNumeric++
			return
		}
		types := typeIdx.Types(stmt.Subject)
		if len(types) == 0 {
			stats.Untyped++
			return
		}
		property := names.Get(stmt.Predicate)
		for typeName := range types {
			idx.Append(model.Pair{Type: typeName, Property: property}, value)
		}
	})
	if err != nil {
		return nil, stats, fmt.Errorf("build property index: %w", err)
	}

	for _, values := range idx {
		sort.Float64s(values)
	}

	return idx, stats, nil
}
