package queries_test

import (
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetWorkOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetWorkOrdersQuery(nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.ClientID())
	assert.Nil(t, query.VehicleID())
	assert.Nil(t, query.Status())
}

func TestNewGetWorkOrdersQuery_AllFilters(t *testing.T) {
	clientID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	status := workorder.InExecution

	query, err := queries.NewGetWorkOrdersQuery(&clientID, &vehicleID, &status)
	require.NoError(t, err)
	assert.Equal(t, &clientID, query.ClientID())
	assert.Equal(t, &vehicleID, query.VehicleID())
	assert.Equal(t, &status, query.Status())
}

func TestNewGetWorkOrdersQuery_InvalidClientID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := queries.NewGetWorkOrdersQuery(&invalidID, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetWorkOrdersQuery_UnknownStatus(t *testing.T) {
	status := workorder.Unknown
	_, err := queries.NewGetWorkOrdersQuery(nil, nil, &status)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestGetWorkOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetWorkOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetWorkOrdersQueryIsNotConstructed)
}

func TestNewGetWorkOrderByIDQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetWorkOrderByIDQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetWorkOrderByIDQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetWorkOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetVehiclesQuery_OptionalFilter(t *testing.T) {
	query, err := queries.NewGetVehiclesQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	clientID := kernel.NewUUID()
	query, err = queries.NewGetVehiclesQuery(&clientID)
	require.NoError(t, err)
	assert.Equal(t, &clientID, query.ClientID())
}

func TestParameterlessQueries_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetPartsQuery().Validate())
	require.NoError(t, queries.NewGetServicesQuery().Validate())
	require.NoError(t, queries.NewGetClientsQuery().Validate())
}

func TestParameterlessQueries_NotConstructedViaConstructor(t *testing.T) {
	require.Error(t, queries.GetPartsQuery{}.Validate())
	require.Error(t, queries.GetServicesQuery{}.Validate())
	require.Error(t, queries.GetClientsQuery{}.Validate())
}
