package models

import (
	"time"

	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is a catalog row in the SQLite data file. Prices are riyal
// amounts stored as exact decimals.
type Product struct {
	ID            int                   `gorm:"column:id;primaryKey"`
	Name          string                `gorm:"column:name;not null"`
	Description   string                `gorm:"column:description;not null"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric;not null"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric"`
	Category      enums.ProductCategory `gorm:"column:category;not null"`
	Featured      bool                  `gorm:"column:featured;not null;default:false"`
	Badge         *string               `gorm:"column:badge"`
	Emoji         string                `gorm:"column:emoji"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
