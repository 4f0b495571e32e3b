package order_test

import (
	"fmt"
	"testing"

	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep Unknown as zero value", func(t *testing.T) {
		var s order.Status

		assert.Equal(t, order.Unknown, s)
		require.Error(t, s.Validate())
	})

	t.Run("should list statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Recebido, order.EmPreparo, order.Pronto, order.EmRota, order.Concluido, order.Extraviado,
		}, order.Statuses())
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "UNKNOWN",
		order.Recebido:   "RECEBIDO",
		order.EmPreparo:  "EM_PREPARO",
		order.Pronto:     "PRONTO",
		order.EmRota:     "EM_ROTA",
		order.Concluido:  "CONCLUIDO",
		order.Extraviado: "EXTRAVIADO",
		order.Status(99): "UNKNOWN",
		order.Status(-1): "UNKNOWN",
	}

	for status, want := range cases {
		t.Run(fmt.Sprintf("should print %d as %s", int(status), want), func(t *testing.T) {
			assert.Equal(t, want, status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status", func(t *testing.T) {
		for _, s := range order.Statuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should ignore case and spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus(" em_rota ")

		require.NoError(t, err)
		assert.Equal(t, order.EmRota, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("ENTREGUE")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("UNKNOWN")
		require.Error(t, err)
	})
}

func TestStatus_Advance(t *testing.T) {
	allowed := map[order.Status]order.Status{
		order.Recebido:  order.EmPreparo,
		order.EmPreparo: order.Pronto,
		order.EmRota:    order.Concluido,
	}
	for from, to := range allowed {
		t.Run("should advance "+from.String(), func(t *testing.T) {
			next, err := from.Advance()

			require.NoError(t, err)
			assert.Equal(t, to, next)
		})
	}

	for _, from := range []order.Status{order.Pronto, order.Concluido, order.Extraviado, order.Unknown, order.Status(42)} {
		t.Run("should not advance "+from.String(), func(t *testing.T) {
			next, err := from.Advance()

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			assert.Equal(t, order.Unknown, next)
			var transitionErr *errs.IllegalTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, from.String(), transitionErr.From)
			assert.Equal(t, "advance", transitionErr.Action)
		})
	}
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("should dispatch PRONTO", func(t *testing.T) {
		next, err := order.Pronto.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, order.EmRota, next)
		require.NoError(t, order.Pronto.ValidateDispatch())
	})

	for _, from := range []order.Status{
		order.Recebido, order.EmPreparo, order.EmRota, order.Concluido, order.Extraviado, order.Unknown,
	} {
		t.Run("should not dispatch "+from.String(), func(t *testing.T) {
			_, err := from.Dispatch()

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			require.ErrorIs(t, from.ValidateDispatch(), errs.ErrIllegalTransition)
		})
	}
}

func TestStatus_ReportLoss(t *testing.T) {
	for _, from := range []order.Status{order.Recebido, order.EmPreparo, order.Pronto, order.EmRota} {
		t.Run("should lose "+from.String(), func(t *testing.T) {
			next, err := from.ReportLoss()

			require.NoError(t, err)
			assert.Equal(t, order.Extraviado, next)
		})
	}

	for _, from := range []order.Status{order.Concluido, order.Extraviado, order.Unknown} {
		t.Run("should not lose "+from.String(), func(t *testing.T) {
			_, err := from.ReportLoss()

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
		})
	}
}

func TestStatus_Queues(t *testing.T) {
	t.Run("should partition statuses into queues", func(t *testing.T) {
		for _, s := range order.Statuses() {
			assert.Equal(t, s == order.Recebido || s == order.EmPreparo, s.IsKitchenActionable(), s.String())
			assert.Equal(t, s == order.Pronto, s.AwaitsLogistics(), s.String())
			assert.Equal(t, s == order.Pronto, s.IsDispatchable(), s.String())
			assert.Equal(t, s == order.Recebido || s == order.EmPreparo || s == order.EmRota, s.CanAdvance(), s.String())
			assert.Equal(t, s == order.Concluido || s == order.Extraviado, s.IsTerminal(), s.String())
		}
	})

	t.Run("should allow no transition out of terminal statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Concluido, order.Extraviado} {
			_, advanceErr := s.Advance()
			_, dispatchErr := s.Dispatch()
			_, lossErr := s.ReportLoss()

			require.Error(t, advanceErr)
			require.Error(t, dispatchErr)
			require.Error(t, lossErr)
		}
	})
}
