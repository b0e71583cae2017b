package repos

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

var sqlitePlaceholders = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type (
	// SQLOps is the subset of *sql.DB the SQLite repository needs.
	SQLOps interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
		PingContext(ctx context.Context) error
	}

	// SQLiteDeviceDomainsRepository is the embedded store used for local runs
	// and end-to-end tests.
	SQLiteDeviceDomainsRepository struct {
		db         SQLOps
		logger     logger.Logger
		translator *CriteriaTranslator
	}
)

func NewSQLiteDeviceDomainsRepository(
	db SQLOps,
	translator *CriteriaTranslator,
	log logger.Logger,
) *SQLiteDeviceDomainsRepository {
	return &SQLiteDeviceDomainsRepository{
		db:         db,
		translator: translator,
		logger:     log,
	}
}

func (r *SQLiteDeviceDomainsRepository) Create(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	query, args, err := sqlitePlaceholders.Insert(deviceDomainsTable).
		Columns("name", "brand", "state", "creation_date_time").
		Values(
			deviceDomain.Name,
			deviceDomain.Brand,
			deviceDomain.State.String(),
			deviceDomain.CreationDateTime,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	deviceDomain.ID = model.DeviceDomainID(id)

	return nil
}

func (r *SQLiteDeviceDomainsRepository) FetchByID(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error) {
	query, args, err := sqlitePlaceholders.Select(deviceDomainColumns...).
		From(deviceDomainsTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row deviceDomainRow
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, model.ErrDeviceDomainNotFound
		}

		return nil, fmt.Errorf("%w: device domain %s: %v", model.ErrDatabaseQuery, id, err)
	}

	return row.toModel()
}

func (r *SQLiteDeviceDomainsRepository) Find(ctx context.Context, criteria model.Criteria) ([]*model.DeviceDomain, error) {
	query, args, err := r.translator.ApplyToSelect(
		sqlitePlaceholders.Select(deviceDomainColumns...).From(deviceDomainsTable),
		criteria,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var rows []deviceDomainRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return rowsToModels(rows)
}

func (r *SQLiteDeviceDomainsRepository) Update(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	query, args, err := sqlitePlaceholders.Update(deviceDomainsTable).
		Set("name", deviceDomain.Name).
		Set("brand", deviceDomain.Brand).
		Set("state", deviceDomain.State.String()).
		Where(sq.Eq{"id": int64(deviceDomain.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *SQLiteDeviceDomainsRepository) Delete(ctx context.Context, id model.DeviceDomainID) error {
	query, args, err := sqlitePlaceholders.Delete(deviceDomainsTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	return r.execAffectingOne(ctx, query, args)
}

func (r *SQLiteDeviceDomainsRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseConnection, err)
	}

	return nil
}

func (r *SQLiteDeviceDomainsRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if affected == 0 {
		return model.ErrDeviceDomainNotFound
	}

	return nil
}
