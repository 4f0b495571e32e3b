package outboxrepo

import (
	"encoding/json"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// OrderChangedEventType names the event written for every persisted order change.
const OrderChangedEventType = "order.changed"

// OrderChangedEvent is the JSON body published for an order change.
type OrderChangedEvent struct {
	EventID    string           `json:"event_id"`
	EventType  string           `json:"event_type"`
	OccurredAt time.Time        `json:"occurred_at"`
	Order      OrderSnapshot    `json:"order"`
	SalesFacts []SalesFactEntry `json:"sales_facts"`
}

type OrderSnapshot struct {
	ID                  string           `json:"id"`
	ClienteNome         string           `json:"cliente_nome"`
	Status              string           `json:"status"`
	Version             int              `json:"version"`
	DataEntrega         *time.Time       `json:"data_entrega,omitempty"`
	ValorTotalVenda     decimal.Decimal  `json:"valor_total_venda"`
	RouteID             *string          `json:"route_id,omitempty"`
	CustoEntregaRateado *decimal.Decimal `json:"custo_entrega_rateado,omitempty"`
	PrejuizoTotal       *decimal.Decimal `json:"prejuizo_total,omitempty"`
}

type SalesFactEntry struct {
	ProductID      string          `json:"product_id"`
	Sabor          string          `json:"sabor"`
	Quantity       int             `json:"quantity"`
	Receita        decimal.Decimal `json:"receita"`
	Custo          decimal.Decimal `json:"custo"`
	CustoLogistico decimal.Decimal `json:"custo_logistico"`
	LucroLiquido   decimal.Decimal `json:"lucro_liquido"`
}

// NewOrderChangedMessage serializes the current state of o and its sales facts.
func NewOrderChangedMessage(topic string, o *order.Order, facts []services.SalesFact) (OutboxDTO, error) {
	now := time.Now().UTC()
	event := OrderChangedEvent{
		EventID:    kernel.NewUUID().String(),
		EventType:  OrderChangedEventType,
		OccurredAt: now,
		Order: OrderSnapshot{
			ID:                  o.ID().String(),
			ClienteNome:         o.ClienteNome(),
			Status:              o.Status().String(),
			Version:             o.Version(),
			DataEntrega:         o.DataEntrega(),
			ValorTotalVenda:     o.ValorTotalVenda(),
			CustoEntregaRateado: o.CustoEntregaRateado(),
		},
		SalesFacts: make([]SalesFactEntry, 0, len(facts)),
	}
	if id := o.RouteID(); id != nil {
		routeID := id.String()
		event.Order.RouteID = &routeID
	}
	if loss := o.Loss(); loss != nil {
		prejuizo := loss.PrejuizoTotal()
		event.Order.PrejuizoTotal = &prejuizo
	}
	for _, f := range facts {
		event.SalesFacts = append(event.SalesFacts, SalesFactEntry{
			ProductID:      f.ProductID.String(),
			Sabor:          f.Sabor,
			Quantity:       f.Quantity,
			Receita:        f.Receita,
			Custo:          f.Custo,
			CustoLogistico: f.CustoLogistico,
			LucroLiquido:   f.LucroLiquido,
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxDTO{}, err
	}

	return OutboxDTO{
		Topic:      topic,
		MessageKey: o.ID().String(),
		Payload:    payload,
		CreatedAt:  now,
	}, nil
}
