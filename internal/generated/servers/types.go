package servers

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// GetOrdersParamsView defines parameters for GetOrders.
type GetOrdersParamsView string

const (
	All       GetOrdersParamsView = "all"
	Kitchen   GetOrdersParamsView = "kitchen"
	Logistics GetOrdersParamsView = "logistics"
)

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	View *GetOrdersParamsView `form:"view,omitempty" json:"view,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money is a decimal amount with two places, serialized as a string.
type Money = string

// Amount is a decimal amount accepted as a JSON number.
type Amount = decimal.Decimal

// Cookie defines model for Cookie.
type Cookie struct {
	Id            types.UUID `json:"id"`
	Sabor         string     `json:"sabor"`
	Descricao     string     `json:"descricao"`
	PrecoVenda    Money      `json:"preco_venda"`
	CustoProducao Money      `json:"custo_producao"`
}

// NewCookie defines model for NewCookie.
type NewCookie struct {
	Sabor         string  `json:"sabor"`
	Descricao     *string `json:"descricao,omitempty"`
	PrecoVenda    Amount  `json:"preco_venda"`
	CustoProducao Amount  `json:"custo_producao"`
}

// CartLine defines model for CartLine.
type CartLine struct {
	ProductId types.UUID `json:"product_id"`
	Quantity  int        `json:"quantity"`
}

// CartQuoteRequest defines model for CartQuoteRequest.
type CartQuoteRequest struct {
	Itens []CartLine `json:"itens"`
}

// CartQuoteLine defines model for CartQuoteLine.
type CartQuoteLine struct {
	ProductId  types.UUID `json:"product_id"`
	Sabor      *string    `json:"sabor,omitempty"`
	Quantity   int        `json:"quantity"`
	PrecoVenda *Money     `json:"preco_venda,omitempty"`
	Subtotal   Money      `json:"subtotal"`
	Known      bool       `json:"known"`
}

// CartQuote defines model for CartQuote.
type CartQuote struct {
	Total Money           `json:"total"`
	Itens []CartQuoteLine `json:"itens"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ClienteNome string     `json:"cliente_nome"`
	DataEntrega *time.Time `json:"data_entrega,omitempty"`
	Itens       []CartLine `json:"itens"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId          types.UUID `json:"product_id"`
	Sabor              string     `json:"sabor"`
	Quantity           int        `json:"quantity"`
	PrecoVendaUnitario Money      `json:"preco_venda_unitario"`
}

// Order defines model for Order.
type Order struct {
	Id                  types.UUID  `json:"id"`
	ClienteNome         string      `json:"cliente_nome"`
	DataEntrega         *time.Time  `json:"data_entrega,omitempty"`
	Status              string      `json:"status"`
	Urgency             *string     `json:"urgency,omitempty"`
	ValorTotalVenda     Money       `json:"valor_total_venda"`
	EntregaId           *types.UUID `json:"entrega_id,omitempty"`
	CustoEntregaRateado *Money      `json:"custo_entrega_rateado,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	Itens               []OrderItem `json:"itens"`

	// PodeAvancar is true when PATCH /orders/{id}/status would move the order forward.
	PodeAvancar bool `json:"pode_avancar"`

	// AguardandoLogistica is true for PRONTO orders waiting for a delivery route.
	AguardandoLogistica bool `json:"aguardando_logistica"`
}

// AdvanceOrderRequest defines model for AdvanceOrderRequest.
type AdvanceOrderRequest struct {
	CurrentStatus *string `json:"current_status,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	Status string `json:"status"`
}

// ReportLossRequest defines model for ReportLossRequest.
type ReportLossRequest struct {
	Motivo string `json:"motivo"`
}

// LossReport defines model for LossReport.
type LossReport struct {
	Status        string `json:"status"`
	Motivo        string `json:"motivo"`
	PrejuizoTotal Money  `json:"prejuizo_total"`
}

// NewDeliveryRoute defines model for NewDeliveryRoute.
type NewDeliveryRoute struct {
	MotoboyNome string       `json:"motoboy_nome"`
	CustoTotal  Amount       `json:"custo_total"`
	PedidosIds  []types.UUID `json:"pedidos_ids"`
}

// DeliveryRoute defines model for DeliveryRoute.
type DeliveryRoute struct {
	EntregaId      types.UUID   `json:"entrega_id"`
	MotoboyNome    string       `json:"motoboy_nome"`
	CustoTotal     Money        `json:"custo_total"`
	CustoPorPedido Money        `json:"custo_por_pedido"`
	PedidosIds     []types.UUID `json:"pedidos_ids"`
}
