package blog

import (
	"context"
	"time"

	"github.com/hadayashop/storefront-backend/pkg/db/models"
)

// samplePosts is the launch editorial content for the blog listing.
func samplePosts() []models.Post {
	day := func(offset int) time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	return []models.Post{
		{
			ID:          1,
			Title:       "فن اختيار الهدية المثالية لكل مناسبة",
			Excerpt:     "دليل شامل يساعدك على اختيار هدية تترك أثراً جميلاً لدى من تحب",
			Category:    "أفكار هدايا",
			Featured:    true,
			PublishedAt: day(30),
		},
		{
			ID:          2,
			Title:       "خمس طرق مبتكرة لتغليف الهدايا في المنزل",
			Excerpt:     "أفكار تغليف بسيطة بأدوات متوفرة تضيف لمسة شخصية لهداياك",
			Category:    "تغليف الهدايا",
			PublishedAt: day(27),
		},
		{
			ID:          3,
			Title:       "هدايا العيد: ما الذي يناسب كل فرد في العائلة؟",
			Excerpt:     "اقتراحات هدايا للعيد تناسب الصغار والكبار بميزانيات مختلفة",
			Category:    "مناسبات",
			PublishedAt: day(24),
		},
		{
			ID:          4,
			Title:       "قصة شريط الساتان: لماذا يبقى الخيار الأول؟",
			Excerpt:     "جولة في أنواع شرائط التغليف ومتى تختار كل نوع",
			Category:    "تغليف الهدايا",
			PublishedAt: day(21),
		},
		{
			ID:          5,
			Title:       "بطاقات التهنئة المخصصة: كلمات تصنع الفرق",
			Excerpt:     "كيف تكتب رسالة تهنئة شخصية تضاعف قيمة الهدية",
			Category:    "أفكار هدايا",
			PublishedAt: day(18),
		},
		{
			ID:          6,
			Title:       "تجهيز هدايا حفلات التخرج خطوة بخطوة",
			Excerpt:     "قائمة تحضير كاملة لهدايا التخرج من الاختيار حتى التسليم",
			Category:    "مناسبات",
			PublishedAt: day(15),
		},
		{
			ID:          7,
			Title:       "هدايا الشركات: بروتوكول الإهداء في بيئة العمل",
			Excerpt:     "ما يصح وما لا يصح عند إهداء الزملاء والعملاء",
			Category:    "هدايا الشركات",
			PublishedAt: day(12),
		},
		{
			ID:          8,
			Title:       "ألوان التغليف ودلالاتها في المناسبات السعودية",
			Excerpt:     "اختيار لون الورق والشريط بما يناسب المناسبة وذوق المهدى إليه",
			Category:    "تغليف الهدايا",
			PublishedAt: day(9),
		},
	}
}

// SeedIfEmpty loads the sample posts into an empty data file.
func (r *Repository) SeedIfEmpty(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.Insert(ctx, samplePosts())
}
