package http

import (
	"fmt"
	"time"

	"cookieadmin/internal/core/application/usecases/queries"
	"cookieadmin/internal/core/domain/model/cart"
	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/generated/servers"
	"cookieadmin/internal/pkg/errs"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// money renders amounts with exactly two places.
func money(d decimal.Decimal) servers.Money {
	return d.StringFixed(2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toKernelUUID(param string, id types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return converted, nil
}

func toCartLines(itens []servers.CartLine) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(itens))
	for i, item := range itens {
		id, err := toKernelUUID(fmt.Sprintf("itens[%d].product_id", i), item.ProductId)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.Line{ProductID: id, Quantity: item.Quantity})
	}
	return lines, nil
}

func toCookie(p *catalog.Product) servers.Cookie {
	return servers.Cookie{
		Id:            p.ID().Bytes(),
		Sabor:         p.Sabor(),
		Descricao:     p.Descricao(),
		PrecoVenda:    money(p.PrecoVenda()),
		CustoProducao: money(p.CustoProducao()),
	}
}

func toCartQuote(q queries.QuoteCartQueryResponse) servers.CartQuote {
	lines := make([]servers.CartQuoteLine, len(q.Lines))
	for i, l := range q.Lines {
		line := servers.CartQuoteLine{
			ProductId: l.ProductID.Bytes(),
			Quantity:  l.Quantity,
			Subtotal:  money(l.Subtotal),
			Known:     l.Known,
		}
		if l.Known {
			sabor := l.Sabor
			preco := money(l.PrecoVenda)
			line.Sabor = &sabor
			line.PrecoVenda = &preco
		}
		lines[i] = line
	}
	return servers.CartQuote{Total: money(q.Total), Itens: lines}
}

func toOrder(o *order.Order, now time.Time) servers.Order {
	urgency := string(o.Urgency(now))
	response := servers.Order{
		Id:              o.ID().Bytes(),
		ClienteNome:     o.ClienteNome(),
		DataEntrega:     o.DataEntrega(),
		Status:          o.Status().String(),
		Urgency:         &urgency,
		ValorTotalVenda: money(o.ValorTotalVenda()),
		CreatedAt:       o.CreatedAt(),
		Itens:           make([]servers.OrderItem, 0, len(o.Items())),

		PodeAvancar:         o.Status().CanAdvance(),
		AguardandoLogistica: o.Status().AwaitsLogistics(),
	}
	if id := o.RouteID(); id != nil {
		routeID := id.Bytes()
		response.EntregaId = &routeID
	}
	if share := o.CustoEntregaRateado(); share != nil {
		value := money(*share)
		response.CustoEntregaRateado = &value
	}
	for _, it := range o.Items() {
		response.Itens = append(response.Itens, servers.OrderItem{
			ProductId:          it.ProductID().Bytes(),
			Sabor:              it.Sabor(),
			Quantity:           it.Quantity(),
			PrecoVendaUnitario: money(it.PrecoVendaUnitario()),
		})
	}
	return response
}

func toOrderView(o queries.GetOrdersQueryResponse) servers.Order {
	urgency := string(o.Urgency)
	response := servers.Order{
		Id:              o.ID.Bytes(),
		ClienteNome:     o.ClienteNome,
		DataEntrega:     o.DataEntrega,
		Status:          o.Status.String(),
		Urgency:         &urgency,
		ValorTotalVenda: money(o.ValorTotalVenda),
		CreatedAt:       o.CreatedAt,
		Itens:           make([]servers.OrderItem, 0, len(o.Items)),

		PodeAvancar:         o.Status.CanAdvance(),
		AguardandoLogistica: o.Status.AwaitsLogistics(),
	}
	if o.RouteID != nil {
		routeID := o.RouteID.Bytes()
		response.EntregaId = &routeID
	}
	if o.CustoEntregaRateado != nil {
		value := money(*o.CustoEntregaRateado)
		response.CustoEntregaRateado = &value
	}
	for _, it := range o.Items {
		response.Itens = append(response.Itens, servers.OrderItem{
			ProductId:          it.ProductID.Bytes(),
			Sabor:              it.Sabor,
			Quantity:           it.Quantity,
			PrecoVendaUnitario: money(it.PrecoVendaUnitario),
		})
	}
	return response
}

func toDeliveryRoute(r *route.DeliveryRoute) servers.DeliveryRoute {
	ids := make([]types.UUID, 0, len(r.OrderIDs()))
	for _, id := range r.OrderIDs() {
		ids = append(ids, id.Bytes())
	}
	return servers.DeliveryRoute{
		EntregaId:      r.ID().Bytes(),
		MotoboyNome:    r.MotoboyNome(),
		CustoTotal:     money(r.CustoTotal()),
		CustoPorPedido: money(r.CustoPorPedido()),
		PedidosIds:     ids,
	}
}
