package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveBudgetCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := restoredOrder(t, workorder.AwaitingApproval)
	cmd, err := commands.NewApproveBudgetCommand(order.ID())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("GetItems", mock.Anything, order.ID()).Return([]*workorder.LineItem{}, nil).Once(),
		repo.On("Update", mock.Anything, order, mock.AnythingOfType("[]*workorder.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBudgetCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, order.Status().IsInExecution())
	assert.True(t, order.ExecutionPeriod().IsStarted())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApproveBudgetCommandHandler_Handle_NotAwaitingApproval(t *testing.T) {
	ctx := t.Context()
	order := restoredOrder(t, workorder.InDiagnosis)
	cmd, err := commands.NewApproveBudgetCommand(order.ID())
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBudgetCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRule)
	assert.True(t, order.Status().IsInDiagnosis())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveBudgetCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveBudgetCommand{} // not constructed properly
	factory := new(MockWorkOrderUoWFactory)
	h := commands.NewApproveBudgetCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrApproveBudgetCommandIsNotConstructed)
}
