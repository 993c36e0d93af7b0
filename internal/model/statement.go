package model

// Statement represents one parsed line of a triple dump
type Statement struct {
	Subject   string // Subject URI, angle brackets stripped
	Predicate string // Predicate URI, angle brackets stripped
	Object    string // Object URI or literal value
	IsLiteral bool   // Whether the object was a quoted literal
	Datatype  string // Literal datatype URI, if any (e.g. xsd:double)
}

// TypeAssertion states that a resource is an instance of a type
type TypeAssertion struct {
	Resource string
	TypeName string
}

// PropertyAssertion states that a resource carries a numeric property value
type PropertyAssertion struct {
	Resource string
	Property string
	Value    float64
}
