package route_test

import (
	"testing"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryRoute(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should split cost evenly", func(t *testing.T) {
		r, err := route.NewDeliveryRoute(kernel.NewUUID(), " Joao ", decimal.RequireFromString("25.00"), []kernel.UUID{a, b})

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Joao", r.MotoboyNome())
		assert.Equal(t, "12.50", r.CustoPorPedido().StringFixed(2))
		assert.Equal(t, []kernel.UUID{a, b}, r.OrderIDs())
		assert.False(t, r.CreatedAt().IsZero())
	})

	t.Run("should reject blank motoboy", func(t *testing.T) {
		_, err := route.NewDeliveryRoute(kernel.NewUUID(), "  ", decimal.NewFromInt(10), []kernel.UUID{a})

		require.ErrorIs(t, err, errs.ErrInvalidRoute)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non positive cost", func(t *testing.T) {
		for _, cost := range []string{"0", "-3.00"} {
			_, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.RequireFromString(cost), []kernel.UUID{a})

			require.ErrorIs(t, err, errs.ErrInvalidRoute, cost)
		}
	})

	t.Run("should reject cost that cannot be stored", func(t *testing.T) {
		for _, cost := range []string{"0.004", "1e10"} {
			r, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.RequireFromString(cost), []kernel.UUID{a})

			assert.Nil(t, r, cost)
			require.ErrorIs(t, err, errs.ErrInvalidRoute, cost)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, cost)
		}
	})

	t.Run("should reject empty selection", func(t *testing.T) {
		_, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.NewFromInt(10), nil)

		require.ErrorIs(t, err, errs.ErrInvalidRoute)
		assert.Contains(t, err.Error(), "no orders selected")
	})

	t.Run("should reject duplicate orders naming the id", func(t *testing.T) {
		_, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.NewFromInt(10), []kernel.UUID{a, b, a})

		var routeErr *errs.InvalidRouteError
		require.ErrorAs(t, err, &routeErr)
		assert.Equal(t, a.String(), routeErr.OrderID)
	})

	t.Run("should reject zero value order id", func(t *testing.T) {
		_, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.NewFromInt(10), []kernel.UUID{{}})

		require.ErrorIs(t, err, errs.ErrInvalidRoute)
		assert.Contains(t, err.Error(), "pedidos_ids[0]")
	})
}

func TestShare(t *testing.T) {
	cases := []struct {
		total string
		n     int
		want  string
	}{
		{"25.00", 2, "12.50"},
		{"10.00", 3, "3.33"},
		{"0.05", 2, "0.02"},
		{"0.07", 2, "0.04"},
		{"10.00", 0, "0.00"},
	}

	for _, tc := range cases {
		t.Run("should share "+tc.total, func(t *testing.T) {
			assert.Equal(t, tc.want, route.Share(decimal.RequireFromString(tc.total), tc.n).StringFixed(2))
		})
	}
}

func TestRestoreDeliveryRoute(t *testing.T) {
	t.Run("should keep the stored share", func(t *testing.T) {
		createdAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

		r, err := route.RestoreDeliveryRoute(
			kernel.NewUUID(), "Joao", decimal.NewFromInt(10), []kernel.UUID{kernel.NewUUID()},
			decimal.RequireFromString("9.99"), createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, "9.99", r.CustoPorPedido().StringFixed(2))
		assert.Equal(t, createdAt, r.CreatedAt())
	})
}
