package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/hadayashop/storefront-backend/pkg/pagination"
)

// Query narrows the post listing. The zero value lists everything.
type Query struct {
	Category   string
	SearchText string
}

// ListResult is one page of the filtered post listing.
type ListResult struct {
	Posts        []Post          `json:"posts"`
	Page         pagination.Page `json:"pagination"`
	VisibleCount int             `json:"visible_count"`
}

// Service exposes blog reads over an immutable in-memory snapshot.
type Service interface {
	List(ctx context.Context, query Query, page int) (*ListResult, error)
	Categories(ctx context.Context) []string
}

type service struct {
	snapshot []Post
	pageSize int
}

// NewService loads the posts once at startup, like the catalog.
func NewService(ctx context.Context, repo *Repository, pageSize int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blog repository required")
	}

	rows, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	snapshot := make([]Post, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, fromModel(row))
	}

	return &service{
		snapshot: snapshot,
		pageSize: pagination.NormalizeSize(pageSize),
	}, nil
}

// List filters the snapshot and slices the requested page. Featured posts
// stay visible under any category filter; search narrows everything,
// featured included.
func (s *service) List(_ context.Context, query Query, page int) (*ListResult, error) {
	view := make([]Post, 0, len(s.snapshot))
	for _, post := range s.snapshot {
		if matchesCategory(post, query.Category) && matchesSearch(post, query.SearchText) {
			view = append(view, post)
		}
	}

	slice := pagination.Slice(page, len(view), s.pageSize)
	return &ListResult{
		Posts:        view[slice.Start:slice.End],
		Page:         slice,
		VisibleCount: len(view),
	}, nil
}

// Categories returns the distinct post categories in snapshot order, with
// the catch-all first.
func (s *service) Categories(_ context.Context) []string {
	seen := map[string]bool{}
	categories := []string{AllCategories}
	for _, post := range s.snapshot {
		if !seen[post.Category] {
			seen[post.Category] = true
			categories = append(categories, post.Category)
		}
	}
	return categories
}

func matchesCategory(post Post, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || category == AllCategories {
		return true
	}
	return post.Category == category || post.Featured
}

func matchesSearch(post Post, searchText string) bool {
	term := strings.ToLower(strings.TrimSpace(searchText))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(post.Title), term) ||
		strings.Contains(strings.ToLower(post.Excerpt), term) ||
		strings.Contains(strings.ToLower(post.Category), term)
}
