package blog

import (
	"time"

	"github.com/hadayashop/storefront-backend/pkg/db/models"
)

// AllCategories is the category filter value that matches every post.
const AllCategories = "جميع المقالات"

// Post is a blog entry as the listing pages consume it.
type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"published_at"`
}

func fromModel(row models.Post) Post {
	return Post{
		ID:          row.ID,
		Title:       row.Title,
		Excerpt:     row.Excerpt,
		Category:    row.Category,
		Featured:    row.Featured,
		PublishedAt: row.PublishedAt,
	}
}
