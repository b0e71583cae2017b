package repos

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

// Dialect selects the SQL flavour for expressions squirrel has no builder for.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"

	defaultSortColumn = "id"
)

var columnMapping = map[string]string{
	"id":               "id",
	"name":             "name",
	"brand":            "brand",
	"state":            "state",
	"creationDateTime": "creation_date_time",
}

type CriteriaTranslator struct {
	logger  *logger.Logger
	dialect Dialect
}

func NewCriteriaTranslator(dialect Dialect, log *logger.Logger) *CriteriaTranslator {
	return &CriteriaTranslator{logger: log, dialect: dialect}
}

func (t *CriteriaTranslator) ApplyToSelect(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if criteria.HasSpec() {
		builder = builder.Where(t.translateSpec(criteria.Spec()))
	}

	return t.applySorting(builder, criteria)
}

func (t *CriteriaTranslator) translateSpec(spec model.Specification) sq.Sqlizer {
	switch spec.Operator() {
	case model.SpecOpEq:
		return sq.Eq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpContains:
		// Position functions compare bytes, so matching is case-sensitive and
		// '%' or '_' in the needle carry no wildcard meaning.
		if t.dialect == DialectSQLite {
			return sq.Expr(fmt.Sprintf("instr(%s, ?) > 0", t.col(spec.Field())), spec.Value())
		}

		return sq.Expr(fmt.Sprintf("strpos(%s, ?) > 0", t.col(spec.Field())), spec.Value())

	case model.SpecOpMust:
		conditions := make(sq.And, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			conditions = append(conditions, t.translateSpec(child))
		}

		return conditions
	}

	return nil
}

func (t *CriteriaTranslator) col(field string) string {
	if col, ok := columnMapping[field]; ok {
		return col
	}

	if t.logger != nil {
		t.logger.Warn().
			Str("field", field).
			Str("fallback", defaultSortColumn).
			Msg("unknown field requested, falling back to default")
	}

	return defaultSortColumn
}

func (t *CriteriaTranslator) applySorting(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	if !c.HasSorting() {
		return builder.OrderBy(defaultSortColumn + " ASC")
	}

	for _, s := range c.Sorting() {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", t.col(s.Field), s.Direction))
	}

	return builder
}
