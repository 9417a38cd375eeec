// Package productrepo provides catalog lookups for order validation.
package productrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO represents a catalog product row. The intake service only
// checks existence; catalog management lives elsewhere.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}
