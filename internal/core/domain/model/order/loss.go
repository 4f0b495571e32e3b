package order

import (
	"errors"
	"strings"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLossReasonIsRequired is returned when a loss is reported without a reason.
var ErrLossReasonIsRequired = errs.NewValueIsRequiredError("motivo")

// Loss records why an order was lost and what it cost to produce.
// The delivery share already paid to the courier is not part of prejuizoTotal.
type Loss struct {
	reason        string
	reportedAt    time.Time
	prejuizoTotal decimal.Decimal
}

// RestoreLoss rebuilds a loss loaded from storage.
func RestoreLoss(reason string, reportedAt time.Time, prejuizoTotal decimal.Decimal) (Loss, error) {
	reason = strings.TrimSpace(reason)
	if err := errors.Join(
		validateLossReason(reason),
		kernel.ValidateNonNegativeAmount("prejuizo_total", prejuizoTotal),
	); err != nil {
		return Loss{}, err
	}
	return Loss{reason: reason, reportedAt: reportedAt, prejuizoTotal: prejuizoTotal}, nil
}

func (l Loss) Reason() string {
	return l.reason
}

func (l Loss) ReportedAt() time.Time {
	return l.reportedAt
}

func (l Loss) PrejuizoTotal() decimal.Decimal {
	return l.prejuizoTotal
}

func validateLossReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrLossReasonIsRequired
	}
	return nil
}
