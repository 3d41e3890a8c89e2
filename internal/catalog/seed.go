package catalog

import (
	"context"

	"github.com/hadayashop/storefront-backend/pkg/db/models"
	"github.com/hadayashop/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// sampleProducts is the launch catalog. It stands in for the merchandising
// feed until one is wired.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "صندوق هدايا فاخر",
			Description:   "صندوق هدايا فاخر بتصميم أنيق يناسب جميع المناسبات",
			Price:         decimal.NewFromInt(45),
			OriginalPrice: decimalPtr(55),
			Category:      enums.CategoryWrapping,
			Featured:      true,
			Badge:         stringPtr("الأكثر مبيعاً"),
			Emoji:         "🎁",
		},
		{
			ID:          2,
			Name:        "شريط ساتان ذهبي",
			Description: "شريط ساتان عالي الجودة بألوان ذهبية وفضية",
			Price:       decimal.NewFromInt(15),
			Category:    enums.CategoryRibbons,
			Emoji:       "🎀",
		},
		{
			ID:          3,
			Name:        "بطاقة تهنئة مخصصة",
			Description: "بطاقة تهنئة بتصميم مخصص مع رسالة شخصية",
			Price:       decimal.NewFromInt(10),
			Category:    enums.CategoryCards,
			Featured:    true,
			Badge:       stringPtr("جديد"),
			Emoji:       "💌",
		},
		{
			ID:          4,
			Name:        "علبة هدايا خشبية",
			Description: "علبة هدايا خشبية مصنوعة يدوياً بتصميم فريد",
			Price:       decimal.NewFromInt(60),
			Category:    enums.CategoryWrapping,
			Emoji:       "📦",
		},
		{
			ID:          5,
			Name:        "ورق تغليف لامع",
			Description: "ورق تغليف عالي الجودة بلمعة فاخرة",
			Price:       decimal.NewFromInt(8),
			Category:    enums.CategoryWrapping,
			Emoji:       "✨",
		},
		{
			ID:          6,
			Name:        "زينة عيد الميلاد",
			Description: "مجموعة زينة متكاملة لأعياد الميلاد",
			Price:       decimal.NewFromInt(25),
			Category:    enums.CategoryRibbons,
			Featured:    true,
			Badge:       stringPtr("عرض خاص"),
			Emoji:       "🎄",
		},
	}
}

// SeedIfEmpty loads the sample catalog into an empty data file.
func (r *Repository) SeedIfEmpty(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.Insert(ctx, sampleProducts())
}

func decimalPtr(units int64) *decimal.Decimal {
	d := decimal.NewFromInt(units)
	return &d
}

func stringPtr(value string) *string {
	return &value
}
