package productrepo

import (
	"context"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindExistingIDs returns the subset of the given ids present in the catalog.
func (r *GormProductRepository) FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	existing := make([]int64, 0, len(ids))
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}

	return existing, nil
}
