package workorder_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderInDiagnosis builds an order with client and vehicle bound, which
// leaves it open for line items.
func orderInDiagnosis(t *testing.T) *workorder.WorkOrder {
	t.Helper()

	clientID := kernel.NewUUID()
	order, err := workorder.NewWorkOrder(&clientID, nil)
	require.NoError(t, err)
	require.NoError(t, order.SetVehicle(kernel.NewUUID()))
	require.Equal(t, workorder.InDiagnosis, order.Status())
	return order
}

// orderAwaitingApproval builds an order with a priced budget.
func orderAwaitingApproval(t *testing.T) *workorder.WorkOrder {
	t.Helper()

	order := orderInDiagnosis(t)
	total, err := kernel.PriceFromFloat(379.20)
	require.NoError(t, err)
	require.NoError(t, order.UpdateTotal(total))
	require.Equal(t, workorder.AwaitingApproval, order.Status())
	return order
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("should create order in initial state", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)

		require.NoError(t, err)
		require.NoError(t, order.Validate())
		assert.Equal(t, workorder.Received, order.Status())
		assert.True(t, order.Total().IsZero())
		assert.Nil(t, order.ClientID())
		assert.Nil(t, order.VehicleID())
		assert.False(t, order.ExecutionPeriod().IsStarted())
		assert.False(t, order.CreatedAt().IsZero())
		assert.False(t, order.UpdatedAt().IsZero())
	})

	t.Run("should accept a client without a vehicle", func(t *testing.T) {
		clientID := kernel.NewUUID()

		order, err := workorder.NewWorkOrder(&clientID, nil)

		require.NoError(t, err)
		require.NotNil(t, order.ClientID())
		assert.True(t, clientID.IsEqual(*order.ClientID()))
	})

	t.Run("should accept both client and vehicle", func(t *testing.T) {
		clientID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()

		order, err := workorder.NewWorkOrder(&clientID, &vehicleID)

		require.NoError(t, err)
		require.NotNil(t, order.VehicleID())
		assert.True(t, vehicleID.IsEqual(*order.VehicleID()))
		assert.Equal(t, workorder.Received, order.Status())
	})

	t.Run("should reject a vehicle without a client", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		_, err := workorder.NewWorkOrder(nil, &vehicleID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("should reject invalid client id", func(t *testing.T) {
		var clientID kernel.UUID

		_, err := workorder.NewWorkOrder(&clientID, nil)

		require.Error(t, err)
	})
}

func TestWorkOrder_Validate(t *testing.T) {
	t.Run("zero value order fails validation", func(t *testing.T) {
		var order workorder.WorkOrder

		err := order.Validate()

		require.Error(t, err)
		assert.Equal(t, workorder.ErrWorkOrderIsNotConstructed, err)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var order *workorder.WorkOrder
		require.Error(t, order.Validate())
	})
}

func TestWorkOrder_SetClient(t *testing.T) {
	t.Run("should bind a client", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)
		clientID := kernel.NewUUID()

		require.NoError(t, order.SetClient(clientID))

		require.NotNil(t, order.ClientID())
		assert.True(t, clientID.IsEqual(*order.ClientID()))
	})

	t.Run("should reject invalid client id", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)

		require.Error(t, order.SetClient(kernel.UUID{}))
	})
}

func TestWorkOrder_SetVehicle(t *testing.T) {
	t.Run("should reject a vehicle while no client is bound", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)

		err = order.SetVehicle(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Nil(t, order.VehicleID())
	})

	t.Run("should begin diagnosis when the order was just received", func(t *testing.T) {
		clientID := kernel.NewUUID()
		order, err := workorder.NewWorkOrder(&clientID, nil)
		require.NoError(t, err)
		vehicleID := kernel.NewUUID()

		require.NoError(t, order.SetVehicle(vehicleID))

		assert.Equal(t, workorder.InDiagnosis, order.Status())
		require.NotNil(t, order.VehicleID())
		assert.True(t, vehicleID.IsEqual(*order.VehicleID()))
	})

	t.Run("should keep the status when already past received", func(t *testing.T) {
		order := orderInDiagnosis(t)

		require.NoError(t, order.SetVehicle(kernel.NewUUID()))

		assert.Equal(t, workorder.InDiagnosis, order.Status())
	})
}

func TestWorkOrder_UpdateTotal(t *testing.T) {
	t.Run("positive total during diagnosis submits the budget", func(t *testing.T) {
		order := orderInDiagnosis(t)
		total, _ := kernel.PriceFromFloat(379.20)

		require.NoError(t, order.UpdateTotal(total))

		assert.Equal(t, workorder.AwaitingApproval, order.Status())
		assert.True(t, total.IsEqual(order.Total()))
	})

	t.Run("zero total never advances the order", func(t *testing.T) {
		order := orderInDiagnosis(t)

		require.NoError(t, order.UpdateTotal(kernel.ZeroPrice()))

		assert.Equal(t, workorder.InDiagnosis, order.Status())
	})

	t.Run("positive total outside diagnosis keeps the status", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)
		total, _ := kernel.PriceFromFloat(50)

		require.NoError(t, order.UpdateTotal(total))

		assert.Equal(t, workorder.Received, order.Status())
		assert.True(t, total.IsEqual(order.Total()))
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		order := orderInDiagnosis(t)

		require.Error(t, order.UpdateTotal(kernel.Price{}))
	})
}

func TestWorkOrder_SubmitForApproval(t *testing.T) {
	t.Run("should move a diagnosed order to awaiting approval", func(t *testing.T) {
		order := orderInDiagnosis(t)

		require.NoError(t, order.SubmitForApproval())

		assert.Equal(t, workorder.AwaitingApproval, order.Status())
	})

	t.Run("is a silent no-op when items cannot be added", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)

		require.NoError(t, order.SubmitForApproval())

		assert.Equal(t, workorder.Received, order.Status())
	})
}

func TestWorkOrder_ApproveBudget(t *testing.T) {
	t.Run("should start execution on approval", func(t *testing.T) {
		order := orderAwaitingApproval(t)

		require.NoError(t, order.ApproveBudget())

		assert.Equal(t, workorder.InExecution, order.Status())
		assert.True(t, order.ExecutionPeriod().IsStarted())
		assert.False(t, order.ExecutionPeriod().IsEnded())
	})

	t.Run("should reject approval outside awaiting approval", func(t *testing.T) {
		order := orderInDiagnosis(t)

		err := order.ApproveBudget()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Equal(t, workorder.InDiagnosis, order.Status())
	})
}

func TestWorkOrder_RejectBudget(t *testing.T) {
	t.Run("should cancel the order on rejection", func(t *testing.T) {
		order := orderAwaitingApproval(t)

		require.NoError(t, order.RejectBudget())

		assert.Equal(t, workorder.Canceled, order.Status())
		assert.False(t, order.ExecutionPeriod().IsStarted())
	})

	t.Run("should reject rejection outside awaiting approval", func(t *testing.T) {
		order := orderInDiagnosis(t)

		err := order.RejectBudget()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("a canceled order can still be delivered", func(t *testing.T) {
		order := orderAwaitingApproval(t)
		require.NoError(t, order.RejectBudget())

		require.NoError(t, order.ChangeStatus(workorder.Delivered))

		assert.Equal(t, workorder.Delivered, order.Status())
	})
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	t.Run("finishing ends the execution period", func(t *testing.T) {
		order := orderAwaitingApproval(t)
		require.NoError(t, order.ApproveBudget())

		require.NoError(t, order.ChangeStatus(workorder.Finished))

		assert.Equal(t, workorder.Finished, order.Status())
		assert.True(t, order.ExecutionPeriod().IsEnded())
	})

	t.Run("should reject edges outside the lifecycle", func(t *testing.T) {
		order, err := workorder.NewWorkOrder(nil, nil)
		require.NoError(t, err)

		err = order.ChangeStatus(workorder.Finished)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, workorder.Received, order.Status())
	})

	t.Run("finishing fails when a restored order never started execution", func(t *testing.T) {
		clientID := kernel.NewUUID()
		now := time.Now()
		order, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), &clientID, nil,
			workorder.InExecution, kernel.ZeroPrice(), workorder.NewExecutionPeriod(),
			now, now,
		)
		require.NoError(t, err)

		err = order.ChangeStatus(workorder.Finished)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Equal(t, workorder.InExecution, order.Status())
		assert.False(t, order.ExecutionPeriod().IsEnded())
	})
}

func TestWorkOrder_Execution(t *testing.T) {
	t.Run("StartExecution is idempotent", func(t *testing.T) {
		order := orderAwaitingApproval(t)
		require.NoError(t, order.ApproveBudget())
		startedAt := order.ExecutionPeriod().StartedAt()
		require.NotNil(t, startedAt)

		require.NoError(t, order.StartExecution())

		assert.Equal(t, *startedAt, *order.ExecutionPeriod().StartedAt())
	})

	t.Run("StartExecution requires the order to be in execution", func(t *testing.T) {
		order := orderInDiagnosis(t)

		err := order.StartExecution()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("FinishExecution requires started work", func(t *testing.T) {
		order := orderInDiagnosis(t)

		err := order.FinishExecution()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("ExecutionDuration needs a closed period", func(t *testing.T) {
		order := orderAwaitingApproval(t)
		require.NoError(t, order.ApproveBudget())

		_, err := order.ExecutionDuration()
		require.Error(t, err)

		require.NoError(t, order.FinishExecution())

		duration, err := order.ExecutionDuration()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, duration, time.Duration(0))
	})
}

func TestWorkOrder_Timestamps(t *testing.T) {
	t.Run("mutations bump updatedAt and never touch createdAt", func(t *testing.T) {
		order := orderInDiagnosis(t)
		createdAt := order.CreatedAt()
		before := order.UpdatedAt()

		time.Sleep(time.Millisecond)
		total, _ := kernel.PriceFromFloat(100)
		require.NoError(t, order.UpdateTotal(total))

		assert.Equal(t, createdAt, order.CreatedAt())
		assert.True(t, order.UpdatedAt().After(before))
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		id := kernel.NewUUID()
		clientID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()
		total, _ := kernel.PriceFromFloat(379.20)
		startedAt := time.Now().Add(-time.Hour)
		endedAt := time.Now()
		period, err := workorder.RestoreExecutionPeriod(&startedAt, &endedAt)
		require.NoError(t, err)
		createdAt := time.Now().Add(-2 * time.Hour)

		order, err := workorder.RestoreWorkOrder(
			id, &clientID, &vehicleID,
			workorder.Finished, total, period,
			createdAt, endedAt,
		)

		require.NoError(t, err)
		require.NoError(t, order.Validate())
		assert.True(t, id.IsEqual(order.ID()))
		assert.Equal(t, workorder.Finished, order.Status())
		assert.True(t, total.IsEqual(order.Total()))
		assert.Equal(t, createdAt, order.CreatedAt())

		duration, err := order.ExecutionDuration()
		require.NoError(t, err)
		assert.InDelta(t, time.Hour.Seconds(), duration.Seconds(), 1)
	})

	t.Run("should reject a vehicle without a client", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		_, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), nil, &vehicleID,
			workorder.Received, kernel.ZeroPrice(), workorder.NewExecutionPeriod(),
			time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), nil, nil,
			workorder.Unknown, kernel.ZeroPrice(), workorder.NewExecutionPeriod(),
			time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("should reject missing timestamps", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), nil, nil,
			workorder.Received, kernel.ZeroPrice(), workorder.NewExecutionPeriod(),
			time.Time{}, time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRule)
	})
}

func TestWorkOrder_FullLifecycle(t *testing.T) {
	t.Run("received order moves through delivery", func(t *testing.T) {
		clientID := kernel.NewUUID()
		order, err := workorder.NewWorkOrder(&clientID, nil)
		require.NoError(t, err)
		assert.Equal(t, workorder.Received, order.Status())

		require.NoError(t, order.SetVehicle(kernel.NewUUID()))
		assert.Equal(t, workorder.InDiagnosis, order.Status())

		total, _ := kernel.PriceFromFloat(379.20)
		require.NoError(t, order.UpdateTotal(total))
		assert.Equal(t, workorder.AwaitingApproval, order.Status())

		require.NoError(t, order.ApproveBudget())
		assert.Equal(t, workorder.InExecution, order.Status())

		require.NoError(t, order.ChangeStatus(workorder.Finished))
		assert.Equal(t, workorder.Finished, order.Status())
		assert.True(t, order.ExecutionPeriod().IsEnded())

		require.NoError(t, order.ChangeStatus(workorder.Delivered))
		assert.Equal(t, workorder.Delivered, order.Status())
		assert.True(t, order.Status().IsConcluded())
	})
}
