// Package orderrepo maps order aggregates to the "orders" and "order_items" tables.
package orderrepo

import (
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the "orders" row. Status is stored by name so ad-hoc SQL stays readable.
type OrderDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ClienteNome         string              `gorm:"type:varchar(255);not null"`
	DataEntrega         *time.Time          `gorm:"index"`
	Status              string              `gorm:"type:varchar(16);not null;index"`
	ValorTotalVenda     decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	RouteID             *uuid.UUID          `gorm:"type:uuid;index"`
	CustoEntregaRateado decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	MotivoExtravio      *string             `gorm:"type:text"`
	PrejuizoTotal       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ExtraviadoEm        *time.Time
	Version             int       `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null"`
	CompletedAt         *time.Time
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one "order_items" row with the prices frozen at order creation.
type OrderItemDTO struct {
	OrderID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position              int             `gorm:"not null"`
	Sabor                 string          `gorm:"type:varchar(120);not null"`
	Quantity              int             `gorm:"not null"`
	PrecoVendaUnitario    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustoProducaoUnitario decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              o.ID().Bytes(),
		ClienteNome:     o.ClienteNome(),
		DataEntrega:     o.DataEntrega(),
		Status:          o.Status().String(),
		ValorTotalVenda: o.ValorTotalVenda(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		CompletedAt:     o.CompletedAt(),
	}

	if id := o.RouteID(); id != nil {
		raw := id.Bytes()
		dto.RouteID = &raw
	}
	if share := o.CustoEntregaRateado(); share != nil {
		dto.CustoEntregaRateado = decimal.NewNullDecimal(*share)
	}
	if loss := o.Loss(); loss != nil {
		reason := loss.Reason()
		reportedAt := loss.ReportedAt()
		dto.MotivoExtravio = &reason
		dto.ExtraviadoEm = &reportedAt
		dto.PrejuizoTotal = decimal.NewNullDecimal(loss.PrejuizoTotal())
	}

	for i, it := range o.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:               dto.ID,
			ProductID:             it.ProductID().Bytes(),
			Position:              i,
			Sabor:                 it.Sabor(),
			Quantity:              it.Quantity(),
			PrecoVendaUnitario:    it.PrecoVendaUnitario(),
			CustoProducaoUnitario: it.CustoProducaoUnitario(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		it, itemErr := order.NewItem(
			productID, itemDTO.Sabor, itemDTO.Quantity, itemDTO.PrecoVendaUnitario, itemDTO.CustoProducaoUnitario)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	state := order.State{
		ID:          id,
		ClienteNome: dto.ClienteNome,
		DataEntrega: dto.DataEntrega,
		Status:      status,
		Items:       items,
		Version:     dto.Version,
		CreatedAt:   dto.CreatedAt,
		CompletedAt: dto.CompletedAt,
	}

	if dto.RouteID != nil {
		routeID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}
		state.RouteID = &routeID
	}
	if dto.CustoEntregaRateado.Valid {
		share := dto.CustoEntregaRateado.Decimal
		state.CustoEntregaRateado = &share
	}
	if dto.MotivoExtravio != nil {
		var reportedAt time.Time
		if dto.ExtraviadoEm != nil {
			reportedAt = *dto.ExtraviadoEm
		}
		loss, lossErr := order.RestoreLoss(*dto.MotivoExtravio, reportedAt, dto.PrejuizoTotal.Decimal)
		if lossErr != nil {
			return nil, lossErr
		}
		state.Loss = &loss
	}

	return order.RestoreOrder(state)
}
