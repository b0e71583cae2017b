//go:build integration

package itest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/architeacher/devicedomains/internal/adapters/repos"
	"github.com/architeacher/devicedomains/internal/domain/model"
	infraPostgres "github.com/architeacher/devicedomains/internal/infrastructure/postgres"
	"github.com/architeacher/devicedomains/internal/services"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "device_domains_test"
	postgresUsername = "test"
	postgresPassword = "test"
)

type DeviceDomainsRepositoryIntegrationTestSuite struct {
	suite.Suite
	suiteCtx    context.Context
	suiteCancel context.CancelFunc
	container   *postgres.PostgresContainer
	pool        *pgxpool.Pool
	repo        *repos.DeviceDomainsRepository
}

func TestDeviceDomainsRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DeviceDomainsRepositoryIntegrationTestSuite))
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) SetupSuite() {
	s.suiteCtx, s.suiteCancel = context.WithTimeout(context.Background(), 5*time.Minute)

	container, err := postgres.Run(s.suiteCtx,
		postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUsername),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.suiteCtx, "sslmode=disable")
	s.Require().NoError(err)

	pool, err := pgxpool.New(s.suiteCtx, connStr)
	s.Require().NoError(err)
	s.pool = pool

	log := logger.NewTestLogger()
	s.Require().NoError(infraPostgres.Migrate(s.suiteCtx, s.pool, log))
	s.Require().NoError(infraPostgres.Migrate(s.suiteCtx, s.pool, log), "migrations are applied once")

	s.repo = repos.NewDeviceDomainsRepository(
		s.pool,
		repos.NewPgxScanner(),
		repos.NewCriteriaTranslator(repos.DialectPostgres, &log),
		log,
	)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.suiteCtx)
	}
	if s.suiteCancel != nil {
		s.suiteCancel()
	}
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(), "TRUNCATE TABLE device_domains")
	s.Require().NoError(err)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) create(name, brand string, state model.State) *model.DeviceDomain {
	deviceDomain := model.NewDeviceDomain(name, brand, state)
	s.Require().NoError(s.repo.Create(s.T().Context(), deviceDomain))
	s.Require().Positive(int64(deviceDomain.ID))

	return deviceDomain
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestCreateAndFetch() {
	created := s.create("iPhone 15", "Apple", model.StateAvailable)

	got, err := s.repo.FetchByID(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Require().Equal(created.Name, got.Name)
	s.Require().Equal(created.Brand, got.Brand)
	s.Require().Equal(created.State, got.State)
	s.Require().True(created.CreationDateTime.Equal(got.CreationDateTime))
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestFindByBrandIsCaseSensitive() {
	apple := s.create("iPhone", "Apple", model.StateAvailable)
	s.create("Juice", "pineapple", model.StateAvailable)
	s.create("Galaxy", "Samsung", model.StateInUse)

	got, err := s.repo.Find(s.T().Context(), model.ByBrand("App"))
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Require().Equal(apple.ID, got[0].ID)

	got, err = s.repo.Find(s.T().Context(), model.ByBrand("%"))
	s.Require().NoError(err)
	s.Require().Empty(got)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestFindByStateAndAll() {
	first := s.create("A", "X", model.StateInUse)
	second := s.create("B", "Y", model.StateInactive)
	third := s.create("C", "Z", model.StateInUse)

	inUse, err := s.repo.Find(s.T().Context(), model.ByState(model.StateInUse))
	s.Require().NoError(err)
	s.Require().Len(inUse, 2)
	s.Require().Equal(first.ID, inUse[0].ID)
	s.Require().Equal(third.ID, inUse[1].ID)

	all, err := s.repo.Find(s.T().Context(), model.All())
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Require().Equal(second.ID, all[1].ID)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestUpdateAndDelete() {
	created := s.create("Pixel", "Google", model.StateAvailable)

	created.Name = "Pixel 9"
	created.State = model.StateInactive
	s.Require().NoError(s.repo.Update(s.T().Context(), created))

	got, err := s.repo.FetchByID(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Require().Equal("Pixel 9", got.Name)
	s.Require().Equal(model.StateInactive, got.State)

	s.Require().NoError(s.repo.Delete(s.T().Context(), created.ID))
	s.Require().ErrorIs(s.repo.Delete(s.T().Context(), created.ID), model.ErrDeviceDomainNotFound)

	_, err = s.repo.FetchByID(s.T().Context(), created.ID)
	s.Require().ErrorIs(err, model.ErrDeviceDomainNotFound)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestStateConstraint() {
	_, err := s.pool.Exec(s.T().Context(),
		"INSERT INTO device_domains (name, brand, state, creation_date_time) VALUES ('n', 'b', 'BROKEN', now())")
	s.Require().Error(err)
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestPing() {
	s.Require().NoError(s.repo.Ping(s.T().Context()))
}

func (s *DeviceDomainsRepositoryIntegrationTestSuite) TestInUseLifecycle() {
	ctx := s.T().Context()
	svc := services.NewDeviceDomainsService(s.repo, nil, nil, logger.NewTestLogger())

	created, err := svc.CreateDeviceDomain(ctx, model.CreateDeviceDomainInput{
		Name:  "Test Device",
		Brand: "Test Brand",
		State: "AVAILABLE",
	})
	s.Require().NoError(err)
	s.Require().Positive(int64(created.ID))

	all, err := svc.ListDeviceDomains(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Require().Equal(created.ID, all[0].ID)

	inUse, err := svc.UpdateDeviceDomain(ctx, created.ID, model.UpdateDeviceDomainInput{State: model.Some("IN_USE")})
	s.Require().NoError(err)
	s.Require().Equal(model.StateInUse, inUse.State)

	_, err = svc.UpdateDeviceDomain(ctx, created.ID, model.UpdateDeviceDomainInput{Name: model.Some("X")})
	s.Require().ErrorIs(err, model.ErrCannotUpdateInUseDeviceDomain)
	s.Require().ErrorIs(svc.DeleteDeviceDomain(ctx, created.ID), model.ErrCannotDeleteInUseDeviceDomain)

	stored, err := svc.GetDeviceDomain(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal("Test Device", stored.Name)
	s.Require().Equal(model.StateInUse, stored.State)
	s.Require().True(created.CreationDateTime.Equal(stored.CreationDateTime))

	_, err = svc.UpdateDeviceDomain(ctx, created.ID, model.UpdateDeviceDomainInput{State: model.Some("AVAILABLE")})
	s.Require().NoError(err)
	s.Require().NoError(svc.DeleteDeviceDomain(ctx, created.ID))

	_, err = svc.GetDeviceDomain(ctx, created.ID)
	s.Require().ErrorIs(err, model.ErrDeviceDomainNotFound)

	all, err = svc.ListDeviceDomains(ctx)
	s.Require().NoError(err)
	s.Require().Empty(all)
}
