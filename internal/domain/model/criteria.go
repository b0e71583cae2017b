package model

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type (
	SortField struct {
		Field     string
		Direction SortDirection
	}

	Criteria struct {
		spec    Specification
		sorting []SortField
	}

	CriteriaBuilder struct {
		specs   []Specification
		sorting []SortField
	}
)

func (c Criteria) Spec() Specification  { return c.spec }
func (c Criteria) Sorting() []SortField { return c.sorting }
func (c Criteria) HasSpec() bool        { return c.spec != nil }
func (c Criteria) HasSorting() bool     { return len(c.sorting) > 0 }

func NewCriteria() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

func (b *CriteriaBuilder) Where(field string, value any) *CriteriaBuilder {
	b.specs = append(b.specs, Eq(field, value))

	return b
}

func (b *CriteriaBuilder) WhereContains(field, substring string) *CriteriaBuilder {
	b.specs = append(b.specs, Contains(field, substring))

	return b
}

// OrderBy sorts ascending, or descending when field starts with "-".
func (b *CriteriaBuilder) OrderBy(field string) *CriteriaBuilder {
	direction := SortAsc

	if len(field) > 0 && field[0] == '-' {
		direction = SortDesc
		field = field[1:]
	}

	b.sorting = append(b.sorting, SortField{Field: field, Direction: direction})

	return b
}

func (b *CriteriaBuilder) Build() Criteria {
	var root Specification

	switch len(b.specs) {
	case 0:
	case 1:
		root = b.specs[0]
	default:
		root = Must(b.specs...)
	}

	return Criteria{spec: root, sorting: b.sorting}
}

// ByBrand selects records whose brand contains substring, oldest first.
func ByBrand(substring string) Criteria {
	return NewCriteria().WhereContains("brand", substring).OrderBy("id").Build()
}

// ByState selects records in state, oldest first.
func ByState(state State) Criteria {
	return NewCriteria().Where("state", state.String()).OrderBy("id").Build()
}

// All selects every record, oldest first.
func All() Criteria {
	return NewCriteria().OrderBy("id").Build()
}
