package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const deviceDomainsTable = "device_domains"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	deviceDomainColumns = []string{"id", "name", "brand", "state", "creation_date_time"}
)

type (
	// PoolOps is the subset of pgxpool.Pool the repository needs.
	PoolOps interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// DeviceDomainsRepository stores device domains in PostgreSQL.
	DeviceDomainsRepository struct {
		pool       PoolOps
		scanner    Scanner
		logger     logger.Logger
		translator *CriteriaTranslator
	}

	deviceDomainRow struct {
		ID               int64     `db:"id"`
		Name             string    `db:"name"`
		Brand            string    `db:"brand"`
		State            string    `db:"state"`
		CreationDateTime time.Time `db:"creation_date_time"`
	}
)

func NewDeviceDomainsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
) *DeviceDomainsRepository {
	return &DeviceDomainsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *DeviceDomainsRepository) Create(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	query, args, err := psql.Insert(deviceDomainsTable).
		Columns("name", "brand", "state", "creation_date_time").
		Values(
			deviceDomain.Name,
			deviceDomain.Brand,
			deviceDomain.State.String(),
			deviceDomain.CreationDateTime,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	deviceDomain.ID = model.DeviceDomainID(id)

	return nil
}

func (r *DeviceDomainsRepository) FetchByID(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error) {
	query, args, err := psql.Select(deviceDomainColumns...).
		From(deviceDomainsTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var row deviceDomainRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrDeviceDomainNotFound
		}

		return nil, fmt.Errorf("%w: device domain %s: %v", model.ErrDatabaseQuery, id, err)
	}

	return row.toModel()
}

func (r *DeviceDomainsRepository) Find(ctx context.Context, criteria model.Criteria) ([]*model.DeviceDomain, error) {
	builder := r.translator.ApplyToSelect(
		psql.Select(deviceDomainColumns...).From(deviceDomainsTable),
		criteria,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var deviceDomainRows []deviceDomainRow
	if err := r.scanner.ScanAll(&deviceDomainRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return rowsToModels(deviceDomainRows)
}

func (r *DeviceDomainsRepository) Update(ctx context.Context, deviceDomain *model.DeviceDomain) error {
	query, args, err := psql.Update(deviceDomainsTable).
		Set("name", deviceDomain.Name).
		Set("brand", deviceDomain.Brand).
		Set("state", deviceDomain.State.String()).
		Where(sq.Eq{"id": int64(deviceDomain.ID)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceDomainNotFound
	}

	return nil
}

func (r *DeviceDomainsRepository) Delete(ctx context.Context, id model.DeviceDomainID) error {
	query, args, err := psql.Delete(deviceDomainsTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDeviceDomainNotFound
	}

	return nil
}

func (r *DeviceDomainsRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseConnection, err)
	}

	return nil
}

func (row deviceDomainRow) toModel() (*model.DeviceDomain, error) {
	state, err := model.ParseState(row.State)
	if err != nil {
		return nil, fmt.Errorf("device domain %d: %w", row.ID, err)
	}

	return &model.DeviceDomain{
		ID:               model.DeviceDomainID(row.ID),
		Name:             row.Name,
		Brand:            row.Brand,
		State:            state,
		CreationDateTime: row.CreationDateTime.UTC(),
	}, nil
}

func rowsToModels(rows []deviceDomainRow) ([]*model.DeviceDomain, error) {
	deviceDomains := make([]*model.DeviceDomain, 0, len(rows))

	for index := range rows {
		deviceDomain, err := rows[index].toModel()
		if err != nil {
			return nil, errors.Join(model.ErrDatabaseQuery, err)
		}

		deviceDomains = append(deviceDomains, deviceDomain)
	}

	return deviceDomains, nil
}
