package model

import "strings"

// ScoreResult is the outcome of comparing the input bag against one
// (type, property) value group. Immutable once produced.
type ScoreResult struct {
	Score    float64   `json:"score"`
	Type     string    `json:"type"`
	Property string    `json:"property"`
	Values   []float64 `json:"-"` // The matched group's sorted values (shared, do not mutate)
}

// ComparePattern selects (type, property) pairs for explicit extra comparisons.
// An empty side matches any name; otherwise a name matches on equality or prefix.
type ComparePattern struct {
	Type     string
	Property string
}

// ParseComparePattern parses a "TYPE: PROPERTY" directive. Either side may be
// empty, meaning wildcard. The first colon splits the two sides.
func ParseComparePattern(s string) ComparePattern {
	typePart, propPart, found := strings.Cut(s, ":")
	if !found {
		return ComparePattern{Type: strings.TrimSpace(s)}
	}
	return ComparePattern{
		Type:     strings.TrimSpace(typePart),
		Property: strings.TrimSpace(propPart),
	}
}

// Matches reports whether the pattern selects the given pair.
func (c ComparePattern) Matches(p Pair) bool {
	return matchName(c.Type, p.Type) && matchName(c.Property, p.Property)
}

// String renders the pattern back in "TYPE: PROPERTY" form for labeling output.
func (c ComparePattern) String() string {
	typePart := c.Type
	if typePart == "" {
		typePart = "*"
	}
	propPart := c.Property
	if propPart == "" {
		propPart = "*"
	}
	return typePart + ": " + propPart
}

func matchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	return name == pattern || strings.HasPrefix(name, pattern)
}
