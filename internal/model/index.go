package model

// Pair identifies one (ontology type, numeric property) group
type Pair struct {
	Type     string `json:"type"`
	Property string `json:"property"`
}

// TypeIndex maps a resource to the set of type names asserted for it.
// Built once per run, read-only afterward.
type TypeIndex map[string]map[string]struct{}

// Add records a type assertion. Duplicate assertions are idempotent.
func (idx TypeIndex) Add(resource, typeName string) {
	types, ok := idx[resource]
	if !ok {
		types = make(map[string]struct{}, 1)
		idx[resource] = types
	}
	types[typeName] = struct{}{}
}

// Types returns the type set for a resource, or nil if the resource is unknown.
func (idx TypeIndex) Types(resource string) map[string]struct{} {
	return idx[resource]
}

// PropertyIndex maps each (type, property) pair to the pooled values taken by
// all resources of that type. Value slices are ascending once Finalize ran.
type PropertyIndex map[Pair][]float64

// Append records one numeric property value under the given pair.
func (idx PropertyIndex) Append(p Pair, value float64) {
	idx[p] = append(idx[p], value)
}
