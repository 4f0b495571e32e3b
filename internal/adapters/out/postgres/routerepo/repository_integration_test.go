package routerepo_test

import (
	"context"
	"testing"

	"cookieadmin/internal/adapters/out/postgres"
	"cookieadmin/internal/adapters/out/postgres/pgtest"
	"cookieadmin/internal/adapters/out/postgres/routerepo"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *routerepo.GormRouteRepository
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("delivery_routes"))
	suite.repository = routerepo.NewGormRouteRepository(suite.pg.DB)
}

func (suite *RouteRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *RouteRepositoryIntegrationTestSuite) TestAddAndGet_KeepsMemberOrder() {
	ctx := context.Background()
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	r, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.RequireFromString("10.00"), []kernel.UUID{c, a, b})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	loaded, err := suite.repository.Get(ctx, r.ID())

	suite.Require().NoError(err)
	suite.Equal("Joao", loaded.MotoboyNome())
	suite.Equal([]kernel.UUID{c, a, b}, loaded.OrderIDs())
	suite.Equal("3.33", loaded.CustoPorPedido().StringFixed(2))
	suite.Equal("10.00", loaded.CustoTotal().StringFixed(2))
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRouteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryIntegrationTestSuite))
}
