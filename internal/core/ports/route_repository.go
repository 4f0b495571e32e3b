package ports

import (
	"context"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/route"
)

// RouteRepository persists delivery routes. Routes are never updated.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.DeliveryRoute) error
	Get(ctx context.Context, id kernel.UUID) (*route.DeliveryRoute, error)
}
