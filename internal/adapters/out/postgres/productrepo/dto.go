// Package productrepo persists catalog products with GORM.
package productrepo

import (
	"time"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the "products" row. Sabor is unique in its normalized form.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Sabor         string          `gorm:"type:varchar(120);not null;uniqueIndex"`
	Descricao     string          `gorm:"type:text;not null"`
	PrecoVenda    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustoProducao decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Active        bool            `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Sabor:         p.Sabor(),
		Descricao:     p.Descricao(),
		PrecoVenda:    p.PrecoVenda(),
		CustoProducao: p.CustoProducao(),
		Active:        p.Active(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProduct(id, dto.Sabor, dto.Descricao, dto.PrecoVenda, dto.CustoProducao, dto.Active)
}
