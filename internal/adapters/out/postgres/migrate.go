package postgres

import (
	"cookieadmin/internal/adapters/out/postgres/orderrepo"
	"cookieadmin/internal/adapters/out/postgres/outboxrepo"
	"cookieadmin/internal/adapters/out/postgres/productrepo"
	"cookieadmin/internal/adapters/out/postgres/routerepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, children last.
var Tables = []string{"products", "orders", "order_items", "delivery_routes", "outbox_messages"}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&routerepo.RouteDTO{},
		&outboxrepo.OutboxDTO{},
	)
}
