package commands_test

import (
	"testing"

	"cookieadmin/internal/core/application/usecases/commands"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("should accept missing expected status", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.ExpectedStatus())
	})

	t.Run("should copy expected status", func(t *testing.T) {
		status := order.EmPreparo
		cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), &status)
		require.NoError(t, err)

		status = order.Pronto

		require.NotNil(t, cmd.ExpectedStatus())
		assert.Equal(t, order.EmPreparo, *cmd.ExpectedStatus())
	})

	t.Run("should reject unknown expected status", func(t *testing.T) {
		status := order.Unknown

		_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), &status)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestAdvanceOrderCommandHandler_Handle(t *testing.T) {
	expectFlow := func(t *testing.T, o *order.Order, withUpdate bool) (*MockUnitOfWork, *MockOrderRepository, *MockOrderUoWFactory) {
		t.Helper()
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		if withUpdate {
			repo.On("Update", ctx, o).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
		}
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		return uow, repo, factory
	}

	t.Run("should move kitchen orders forward", func(t *testing.T) {
		cases := []struct {
			from, to order.Status
		}{
			{order.Recebido, order.EmPreparo},
			{order.EmPreparo, order.Pronto},
			{order.EmRota, order.Concluido},
		}
		for _, tc := range cases {
			o := newOrderIn(t, tc.from)
			uow, repo, factory := expectFlow(t, o, true)
			cmd, err := commands.NewAdvanceOrderCommand(o.ID(), nil)
			require.NoError(t, err)

			next, err := commands.NewAdvanceOrderCommandHandler(factory).Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
			assert.Equal(t, tc.to, o.Status())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		}
	})

	t.Run("should reject advance of ready order", func(t *testing.T) {
		o := newOrderIn(t, order.Pronto)
		uow, repo, factory := expectFlow(t, o, false)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID(), nil)
		require.NoError(t, err)

		_, err = commands.NewAdvanceOrderCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Pronto, o.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject advance of terminal orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Concluido, order.Extraviado} {
			o := newOrderIn(t, status)
			_, _, factory := expectFlow(t, o, false)
			cmd, err := commands.NewAdvanceOrderCommand(o.ID(), nil)
			require.NoError(t, err)

			_, err = commands.NewAdvanceOrderCommandHandler(factory).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should return conflict for stale expected status", func(t *testing.T) {
		o := newOrderIn(t, order.EmPreparo)
		_, repo, factory := expectFlow(t, o, false)
		seen := order.Recebido
		cmd, err := commands.NewAdvanceOrderCommand(o.ID(), &seen)
		require.NoError(t, err)

		_, err = commands.NewAdvanceOrderCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.EmPreparo, o.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should propagate version conflict from update", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderIn(t, order.Recebido)
		repo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(errs.NewConflictError("order", o.ID().String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		cmd, err := commands.NewAdvanceOrderCommand(o.ID(), nil)
		require.NoError(t, err)

		_, err = commands.NewAdvanceOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		repo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		cmd, err := commands.NewAdvanceOrderCommand(id, nil)
		require.NoError(t, err)

		_, err = commands.NewAdvanceOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
