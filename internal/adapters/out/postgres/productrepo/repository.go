package productrepo

import (
	"context"
	"errors"
	"fmt"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, dto.Sabor)
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"sabor":          dto.Sabor,
		"descricao":      dto.Descricao,
		"preco_venda":    dto.PrecoVenda,
		"custo_producao": dto.CustoProducao,
		"active":         dto.Active,
	})
	if result.Error != nil {
		return translate(result.Error, dto.Sabor)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ID().String())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormProductRepository) GetBySabor(ctx context.Context, sabor string) (*catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Where("sabor = ?", catalog.NormalizeSabor(sabor)).
		Limit(1).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}
	return toDomain(dtos[0])
}

func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("sabor").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// translate turns a unique violation on sabor into a validation error. It relies on
// gorm.Config.TranslateError being enabled.
func translate(err error, sabor string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("sabor", fmt.Errorf("%s already exists", sabor))
	}
	return err
}
