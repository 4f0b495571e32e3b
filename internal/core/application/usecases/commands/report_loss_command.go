package commands

import (
	"errors"
	"strings"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/guard"
)

var ErrReportLossCommandIsNotConstructed = errors.New(
	"ReportLossCommand must be created via NewReportLossCommand constructor",
)

// ReportLossCommand marks an order as lost (EXTRAVIADO) with a reason.
type ReportLossCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	motivo  string

	guard guard.ConstructorGuard
}

func NewReportLossCommand(orderID kernel.UUID, motivo string) (ReportLossCommand, error) {
	cmd := ReportLossCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMotivo(motivo),
	); err != nil {
		return ReportLossCommand{}, err
	}

	return cmd, nil
}

func (c ReportLossCommand) Validate() error {
	return c.guard.Validate(ErrReportLossCommandIsNotConstructed)
}

func (c ReportLossCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReportLossCommand) Motivo() string {
	return c.motivo
}

func (c *ReportLossCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReportLossCommand) setMotivo(motivo string) error {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return order.ErrLossReasonIsRequired
	}
	c.motivo = motivo
	return nil
}
