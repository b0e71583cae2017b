package model

type SpecOperator string

const (
	SpecOpEq       SpecOperator = "eq"
	SpecOpContains SpecOperator = "contains"
	SpecOpMust     SpecOperator = "must"
)

// Specification is a store independent filter over device domain fields.
type Specification interface {
	Operator() SpecOperator
	Field() string
	Value() any
	Children() []Specification
}

type leafSpec struct {
	op    SpecOperator
	field string
	value any
}

// Eq matches records whose field equals value exactly.
func Eq(field string, value any) Specification {
	return leafSpec{op: SpecOpEq, field: field, value: value}
}

// Contains matches records whose text field contains substring, compared
// case-sensitively and without wildcard interpretation.
func Contains(field, substring string) Specification {
	return leafSpec{op: SpecOpContains, field: field, value: substring}
}

func (s leafSpec) Operator() SpecOperator    { return s.op }
func (s leafSpec) Field() string             { return s.field }
func (s leafSpec) Value() any                { return s.value }
func (s leafSpec) Children() []Specification { return nil }

type mustSpec struct {
	specs []Specification
}

// Must matches records satisfying every spec.
func Must(specs ...Specification) Specification {
	return mustSpec{specs: specs}
}

func (s mustSpec) Operator() SpecOperator    { return SpecOpMust }
func (s mustSpec) Field() string             { return "" }
func (s mustSpec) Value() any                { return nil }
func (s mustSpec) Children() []Specification { return s.specs }
