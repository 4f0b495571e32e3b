package productrepo_test

import (
	"context"
	"testing"

	"cookieadmin/internal/adapters/out/postgres"
	"cookieadmin/internal/adapters/out/postgres/pgtest"
	"cookieadmin/internal/adapters/out/postgres/productrepo"
	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("products"))
	suite.repository = productrepo.NewGormProductRepository(suite.pg.DB)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	p := suite.newProduct("red velvet", "8.50")

	suite.Require().NoError(suite.repository.Add(ctx, p))
	loaded, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal("Red Velvet", loaded.Sabor())
	suite.Equal("8.50", loaded.PrecoVenda().StringFixed(2))
	suite.True(loaded.Active())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateSaborIsValidationError() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newProduct("Chocolate", "8.00")))

	err := suite.repository.Add(ctx, suite.newProduct("  chocolate ", "9.00"))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Contains(err.Error(), "already exists")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetBySabor() {
	ctx := context.Background()
	p := suite.newProduct("Pistache", "12.00")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	found, err := suite.repository.GetBySabor(ctx, " PISTACHE")
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(found.ID().IsEqual(p.ID()))

	missing, err := suite.repository.GetBySabor(ctx, "Baunilha")
	suite.Require().NoError(err)
	suite.Nil(missing)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	p := suite.newProduct("Chocolate", "8.00")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Update("chocolate meio amargo", "70%", decimal.RequireFromString("9.50"), decimal.RequireFromString("4.00")))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Chocolate Meio Amargo", loaded.Sabor())
	suite.Equal("70%", loaded.Descricao())
	suite.Equal("9.50", loaded.PrecoVenda().StringFixed(2))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_UnknownProduct() {
	err := suite.repository.Update(context.Background(), suite.newProduct("Chocolate", "8.00"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetMany() {
	ctx := context.Background()
	a := suite.newProduct("Chocolate", "8.00")
	b := suite.newProduct("Baunilha", "7.00")
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	products, err := suite.repository.GetMany(ctx, []kernel.UUID{a.ID(), b.ID(), kernel.NewUUID()})

	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("Baunilha", products[0].Sabor())
	suite.Equal("Chocolate", products[1].Sabor())
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(sabor, preco string) *catalog.Product {
	p, err := catalog.NewProduct(kernel.NewUUID(), sabor, "", decimal.RequireFromString(preco), decimal.RequireFromString("2.00"))
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
