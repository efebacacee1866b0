package commands_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return q
}

func mustPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	p, err := kernel.PriceFromFloat(amount)
	require.NoError(t, err)
	return p
}

func catalogService(t *testing.T, name string, price float64) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(name, mustPrice(t, price))
	require.NoError(t, err)
	return svc
}

func stockedPart(t *testing.T, name string, price float64, units int) *part.Part {
	t.Helper()
	stock, err := part.NewStock(units)
	require.NoError(t, err)
	p, err := part.NewPart(name, "", mustPrice(t, price), stock)
	require.NoError(t, err)
	return p
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(
	ctx context.Context, aggregate *workorder.WorkOrder, items []*workorder.LineItem,
) error {
	args := m.Called(ctx, aggregate, items)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(
	ctx context.Context, aggregate *workorder.WorkOrder, items []*workorder.LineItem,
) error {
	args := m.Called(ctx, aggregate, items)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetItems(ctx context.Context, orderID kernel.UUID) ([]*workorder.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.LineItem), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPartRepository struct{ mock.Mock }

func (m *MockPartRepository) Add(ctx context.Context, aggregate *part.Part) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPartRepository) Update(ctx context.Context, aggregate *part.Part) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*part.Part), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, aggregate *catalog.Service) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, aggregate *catalog.Service) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

type MockBudgetUoW struct{ mock.Mock }

func (m *MockBudgetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBudgetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBudgetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBudgetUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockBudgetUoW) PartRepository() ports.PartRepository {
	args := m.Called()
	return args.Get(0).(ports.PartRepository)
}

func (m *MockBudgetUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockBudgetUoWFactory struct{ mock.Mock }

func (m *MockBudgetUoWFactory) Create() commands.BudgetUoW {
	args := m.Called()
	return args.Get(0).(commands.BudgetUoW)
}

func TestCreateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	svc := catalogService(t, "Oil change", 150)
	p := stockedPart(t, "Oil filter", 45.5, 4)

	svcItem, err := commands.NewBudgetItem(svc.ID(), mustQuantity(t, 1))
	require.NoError(t, err)
	partItem, err := commands.NewBudgetItem(p.ID(), mustQuantity(t, 2))
	require.NoError(t, err)

	cmd, err := commands.NewCreateWorkOrderCommand(
		nil, nil, []commands.BudgetItem{svcItem}, []commands.BudgetItem{partItem},
	)
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	partRepo := new(MockPartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockBudgetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once(),
		uow.On("PartRepository").Return(partRepo).Once(),
		partRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		partRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything,
			mock.AnythingOfType("*workorder.WorkOrder"),
			mock.AnythingOfType("[]*workorder.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	assert.Equal(t, 2, p.Stock().Units())
	orderRepo.AssertExpectations(t)
	partRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateWorkOrderCommand{} // not constructed properly
	factory := new(MockBudgetUoWFactory)
	h := commands.NewCreateWorkOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateWorkOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateWorkOrderCommand(nil, nil, nil, nil)
	require.NoError(t, err)

	uow := new(MockBudgetUoW)
	factory := new(MockBudgetUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(assert.AnError).Once(),
	)

	h := commands.NewCreateWorkOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateWorkOrderCommandHandler_Handle_ServiceNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	svcItem, err := commands.NewBudgetItem(missingID, mustQuantity(t, 1))
	require.NoError(t, err)
	cmd, err := commands.NewCreateWorkOrderCommand(nil, nil, []commands.BudgetItem{svcItem}, nil)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockBudgetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("serviceId", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	p := stockedPart(t, "Brake pad", 80, 1)
	partItem, err := commands.NewBudgetItem(p.ID(), mustQuantity(t, 3))
	require.NoError(t, err)
	cmd, err := commands.NewCreateWorkOrderCommand(nil, nil, nil, []commands.BudgetItem{partItem})
	require.NoError(t, err)

	partRepo := new(MockPartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockBudgetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		uow.On("PartRepository").Return(partRepo).Once(),
		partRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRule)
	partRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateWorkOrderCommand(nil, nil, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	partRepo := new(MockPartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockBudgetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		uow.On("PartRepository").Return(partRepo).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything,
			mock.AnythingOfType("*workorder.WorkOrder"),
			mock.AnythingOfType("[]*workorder.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
