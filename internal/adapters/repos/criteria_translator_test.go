package repos_test

import (
	"bytes"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/adapters/repos"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

func TestCriteriaTranslator_ApplyToSelect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		dialect      repos.Dialect
		placeholders sq.PlaceholderFormat
		criteria     model.Criteria
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "no conditions",
			dialect:      repos.DialectPostgres,
			placeholders: sq.Dollar,
			criteria:     model.All(),
			expectedSQL:  "SELECT * FROM device_domains ORDER BY id ASC",
		},
		{
			name:         "postgres contains",
			dialect:      repos.DialectPostgres,
			placeholders: sq.Dollar,
			criteria:     model.ByBrand("50%_off"),
			expectedSQL:  "SELECT * FROM device_domains WHERE strpos(brand, $1) > 0 ORDER BY id ASC",
			expectedArgs: []any{"50%_off"},
		},
		{
			name:         "sqlite contains",
			dialect:      repos.DialectSQLite,
			placeholders: sq.Question,
			criteria:     model.ByBrand("Apple"),
			expectedSQL:  "SELECT * FROM device_domains WHERE instr(brand, ?) > 0 ORDER BY id ASC",
			expectedArgs: []any{"Apple"},
		},
		{
			name:         "combined conditions and descending sort",
			dialect:      repos.DialectPostgres,
			placeholders: sq.Dollar,
			criteria: model.NewCriteria().
				Where("state", "AVAILABLE").
				WhereContains("name", "Pro").
				OrderBy("-creationDateTime").
				Build(),
			expectedSQL:  "SELECT * FROM device_domains WHERE (state = $1 AND strpos(name, $2) > 0) ORDER BY creation_date_time DESC",
			expectedArgs: []any{"AVAILABLE", "Pro"},
		},
		{
			name:         "unsorted criteria default to id",
			dialect:      repos.DialectSQLite,
			placeholders: sq.Question,
			criteria:     model.NewCriteria().Where("state", "IN_USE").Build(),
			expectedSQL:  "SELECT * FROM device_domains WHERE state = ? ORDER BY id ASC",
			expectedArgs: []any{"IN_USE"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			translator := repos.NewCriteriaTranslator(tc.dialect, nil)
			builder := sq.StatementBuilder.PlaceholderFormat(tc.placeholders).Select("*").From("device_domains")

			sql, args, err := translator.ApplyToSelect(builder, tc.criteria).ToSql()

			require.NoError(t, err)
			require.Equal(t, tc.expectedSQL, sql)
			require.Equal(t, tc.expectedArgs, args)
		})
	}
}

func TestCriteriaTranslator_UnknownFieldFallsBackToID(t *testing.T) {
	t.Parallel()

	logBuffer := &bytes.Buffer{}
	log := logger.NewBufferedTestLogger(logBuffer)
	translator := repos.NewCriteriaTranslator(repos.DialectPostgres, &log)

	criteria := model.NewCriteria().OrderBy("-colour").Build()
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("*").From("device_domains")

	sql, _, err := translator.ApplyToSelect(builder, criteria).ToSql()

	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM device_domains ORDER BY id DESC", sql)
	require.Contains(t, logBuffer.String(), "unknown field requested")
	require.Contains(t, logBuffer.String(), `"field":"colour"`)
}
