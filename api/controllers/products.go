package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hadayashop/storefront-backend/api/responses"
	"github.com/hadayashop/storefront-backend/api/validators"
	"github.com/hadayashop/storefront-backend/internal/catalog"
	"github.com/hadayashop/storefront-backend/pkg/enums"
	pkgerrors "github.com/hadayashop/storefront-backend/pkg/errors"
	"github.com/hadayashop/storefront-backend/pkg/logger"
	"github.com/hadayashop/storefront-backend/pkg/types"
)

// ListProducts serves the shop grid: filters, ordering and pagination all
// come in as query parameters.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query, err := buildCatalogQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), *query, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// FeaturedProducts serves the home-page carousel.
func FeaturedProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Featured(r.Context()))
	}
}

// GetProduct serves a single product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be numeric"))
			return
		}

		product, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func buildCatalogQuery(r *http.Request) (*catalog.Query, error) {
	query := catalog.Query{SearchText: strings.TrimSpace(r.URL.Query().Get("q"))}

	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category")
		}
		query.Category = &category
	}

	minRaw, hasMin, err := validators.ParseQueryDecimal(r, "min_price")
	if err != nil {
		return nil, err
	}
	maxRaw, hasMax, err := validators.ParseQueryDecimal(r, "max_price")
	if err != nil {
		return nil, err
	}
	if hasMin || hasMax {
		bounds := catalog.PriceRange{}
		if hasMin {
			min, parseErr := types.ParseSAR(minRaw)
			if parseErr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid min_price")
			}
			bounds.Min = min
		}
		if hasMax {
			max, parseErr := types.ParseSAR(maxRaw)
			if parseErr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid max_price")
			}
			bounds.Max = &max
		}
		query.PriceRange = &bounds
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		key, err := enums.ParseSortKey(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown sort key")
		}
		query.SortKey = &key
	}

	return &query, nil
}
