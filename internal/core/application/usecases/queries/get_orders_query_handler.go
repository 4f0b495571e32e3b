package queries

import (
	"context"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads fulfillment queues from the orders tables.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle runs two statements: the orders of the view, then their items.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.View().Statuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cliente_nome,
			data_entrega,
			status,
			valor_total_venda,
			route_id,
			custo_entrega_rateado,
			created_at
		FROM orders
		WHERE status = ANY(?)
		ORDER BY data_entrega ASC NULLS LAST, created_at, id
	`, pq.Array(names)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			resp        GetOrdersQueryResponse
			id          uuid.UUID
			dataEntrega *time.Time
			status      string
			routeID     uuid.NullUUID
			share       decimal.NullDecimal
		)

		if err = rows.Scan(
			&id,
			&resp.ClienteNome,
			&dataEntrega,
			&status,
			&resp.ValorTotalVenda,
			&routeID,
			&share,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if routeID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(routeID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RouteID = &rid
		}
		if share.Valid {
			value := share.Decimal
			resp.CustoEntregaRateado = &value
		}
		resp.DataEntrega = dataEntrega
		resp.Urgency = order.ClassifyUrgency(dataEntrega, query.Now())
		resp.Items = make([]GetOrdersQueryItem, 0)

		index[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, index, ids); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	index map[uuid.UUID]int,
	ids []uuid.UUID,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			sabor,
			quantity,
			preco_venda_unitario
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			item      GetOrdersQueryItem
		)
		if err = rows.Scan(&orderID, &productID, &item.Sabor, &item.Quantity, &item.PrecoVendaUnitario); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}
