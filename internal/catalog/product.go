package catalog

import (
	"github.com/hadayashop/storefront-backend/pkg/db/models"
	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/hadayashop/storefront-backend/pkg/types"
)

// Product is the immutable catalog record served to storefront pages.
type Product struct {
	ID            int                   `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Price         types.Money           `json:"price"`
	OriginalPrice *types.Money          `json:"original_price,omitempty"`
	Category      enums.ProductCategory `json:"category"`
	Featured      bool                  `json:"featured"`
	Badge         *string               `json:"badge,omitempty"`
	Emoji         string                `json:"emoji"`
}

// PriceDisplay renders the current price the way the shop prints it.
func (p Product) PriceDisplay() string {
	return p.Price.Display()
}

func fromModel(row models.Product) Product {
	product := Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       types.Money{Amount: row.Price, Currency: types.CurrencySAR},
		Category:    row.Category,
		Featured:    row.Featured,
		Badge:       row.Badge,
		Emoji:       row.Emoji,
	}
	if row.OriginalPrice != nil {
		original := types.Money{Amount: *row.OriginalPrice, Currency: types.CurrencySAR}
		product.OriginalPrice = &original
	}
	return product
}
