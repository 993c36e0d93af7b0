// Package index builds the two read-only dictionaries the scorer runs
// against: resource→types and (type, property)→values.
package index

import (
	"fmt"
	"strings"

	"github.com/numlab/distmatch/internal/model"
	"github.com/numlab/distmatch/internal/triples"
)

// rdfTypeMarker identifies rdf-type predicates across the namespace variants
// seen in instance-types dumps.
const rdfTypeMarker = "22-rdf-syntax-ns#type"

// BuildTypeIndex streams an instance-types dump into a resource→{type} index.
// Assertions with a non-rdf-type predicate are ignored.
func BuildTypeIndex(r *triples.Reader, names *triples.LocalNames) (model.TypeIndex, error) {
	idx := make(model.TypeIndex)

	err := r.Each(func(stmt model.Statement) {
		if !strings.Contains(stmt.Predicate, rdfTypeMarker) {
			return
		}
		if stmt.IsLiteral {
			return
		}
		typeName := names.Get(stmt.Object)
		if typeName == "" {
			return
		}
		idx.Add(stmt.Subject, typeName)
	})
	if err != nil {
		return nil, fmt.Errorf("build type index: %w", err)
	}

	return idx, nil
}
