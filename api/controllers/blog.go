package controllers

import (
	"net/http"
	"strings"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	blogsvc "github.com/hadayashop/storefront-backend/internal/blog"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/logger"
)

// ListPosts serves the blog listing with category, search and page filters.
func ListPosts(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "blog service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := blogsvc.Query{
			Category:   strings.TrimSpace(r.URL.Query().Get("category")),
			SearchText: strings.TrimSpace(r.URL.Query().Get("q")),
		}

		result, err := svc.List(r.Context(), query, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// BlogCategories serves the category filter bar.
func BlogCategories(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "blog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}
