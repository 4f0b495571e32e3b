package commands_test

import (
	"testing"

	"cookieadmin/internal/core/application/usecases/commands"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	t.Run("should update fields and commit", func(t *testing.T) {
		ctx := t.Context()
		existing := newProduct(t, "Chocolate", "8.00", "3.00")
		cmd, err := commands.NewUpdateProductCommand(
			existing.ID(), "chocolate meio amargo", "70%", decimal.RequireFromString("9.50"), decimal.RequireFromString("3.50"))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(repo).Once(),
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("GetBySabor", ctx, "Chocolate Meio Amargo").Return(nil, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		p, err := commands.NewUpdateProductCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Chocolate Meio Amargo", p.Sabor())
		assert.Equal(t, "70%", p.Descricao())
		assert.True(t, p.PrecoVenda().Equal(decimal.RequireFromString("9.50")))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should allow keeping the same sabor", func(t *testing.T) {
		ctx := t.Context()
		existing := newProduct(t, "Chocolate", "8.00", "3.00")
		cmd, err := commands.NewUpdateProductCommand(
			existing.ID(), "Chocolate", "", decimal.RequireFromString("8.50"), decimal.RequireFromString("3.00"))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		repo.On("Update", ctx, existing).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewUpdateProductCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "GetBySabor", mock.Anything, mock.Anything)
	})

	t.Run("should reject sabor used by another product", func(t *testing.T) {
		ctx := t.Context()
		existing := newProduct(t, "Chocolate", "8.00", "3.00")
		other := newProduct(t, "Baunilha", "7.00", "2.00")
		cmd, err := commands.NewUpdateProductCommand(
			existing.ID(), "baunilha", "", decimal.RequireFromString("8.00"), decimal.RequireFromString("3.00"))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		repo.On("GetBySabor", ctx, "Baunilha").Return(other, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewUpdateProductCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Chocolate", existing.Sabor())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateProductCommand(
			id, "Chocolate", "", decimal.RequireFromString("8.00"), decimal.RequireFromString("3.00"))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("product", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockProductUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewUpdateProductCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
