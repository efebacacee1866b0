package client_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should create a client", func(t *testing.T) {
		c, err := client.NewClient("Maria Silva", "12345678900")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.NoError(t, c.ID().Validate())
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "12345678900", c.Document())
	})

	t.Run("should reject a short name", func(t *testing.T) {
		_, err := client.NewClient("x", "12345678900")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a document", func(t *testing.T) {
		_, err := client.NewClient("Maria Silva", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreClient(t *testing.T) {
	t.Run("should restore with the original identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := client.RestoreClient(id, "Maria Silva", "12345678900")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(c.ID()))
	})

	t.Run("should reject a missing identifier", func(t *testing.T) {
		_, err := client.RestoreClient(kernel.UUID{}, "Maria Silva", "12345678900")
		require.Error(t, err)
	})
}

func TestNewVehicle(t *testing.T) {
	clientID := kernel.NewUUID()

	t.Run("should create a vehicle", func(t *testing.T) {
		v, err := client.NewVehicle(clientID, "ABC1D23", "Sedan X", 2020)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, clientID.IsEqual(v.ClientID()))
		assert.Equal(t, "ABC1D23", v.Plate())
		assert.Equal(t, "Sedan X", v.Model())
		assert.Equal(t, 2020, v.Year())
	})

	t.Run("should require an owning client", func(t *testing.T) {
		_, err := client.NewVehicle(kernel.UUID{}, "ABC1D23", "Sedan X", 2020)
		require.Error(t, err)
	})

	t.Run("should require a plate", func(t *testing.T) {
		_, err := client.NewVehicle(clientID, "", "Sedan X", 2020)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require a model", func(t *testing.T) {
		_, err := client.NewVehicle(clientID, "ABC1D23", "", 2020)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject implausible years", func(t *testing.T) {
		for _, year := range []int{1899, 0, time.Now().Year() + 2} {
			_, err := client.NewVehicle(clientID, "ABC1D23", "Sedan X", year)

			require.Error(t, err, "expected error for year %d", year)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should restore with the original identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		clientID := kernel.NewUUID()

		v, err := client.RestoreVehicle(id, clientID, "ABC1D23", "Sedan X", 2020)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(v.ID()))
	})
}

func TestClientAndVehicle_Validate(t *testing.T) {
	t.Run("zero values fail validation", func(t *testing.T) {
		var c client.Client
		var v client.Vehicle

		assert.Equal(t, client.ErrClientIsNotConstructed, c.Validate())
		assert.Equal(t, client.ErrVehicleIsNotConstructed, v.Validate())
	})
}
