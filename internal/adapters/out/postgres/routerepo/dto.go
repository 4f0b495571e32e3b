// Package routerepo persists delivery routes with GORM.
package routerepo

import (
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// RouteDTO is the "delivery_routes" row. Member ids keep the selection order.
type RouteDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MotoboyNome    string          `gorm:"type:varchar(255);not null"`
	CustoTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustoPorPedido decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PedidosIDs     pq.StringArray  `gorm:"type:text[];not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

func (RouteDTO) TableName() string {
	return "delivery_routes"
}

func fromDomain(r *route.DeliveryRoute) RouteDTO {
	ids := r.OrderIDs()
	pedidos := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		pedidos = append(pedidos, id.String())
	}

	return RouteDTO{
		ID:             r.ID().Bytes(),
		MotoboyNome:    r.MotoboyNome(),
		CustoTotal:     r.CustoTotal(),
		CustoPorPedido: r.CustoPorPedido(),
		PedidosIDs:     pedidos,
		CreatedAt:      r.CreatedAt(),
	}
}

func toDomain(dto RouteDTO) (*route.DeliveryRoute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.PedidosIDs))
	for _, raw := range dto.PedidosIDs {
		orderID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return route.RestoreDeliveryRoute(id, dto.MotoboyNome, dto.CustoTotal, orderIDs, dto.CustoPorPedido, dto.CreatedAt)
}
