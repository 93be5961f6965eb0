package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// ErrNotFound marks a missing reference: the requested entity does not exist
// or is not visible in the active storefront. Callers degrade to the
// storefront's safe landing view instead of failing hard.
var ErrNotFound = errors.New("not visible in this storefront")

// SortDirection orders a product list by the active market's price.
type SortDirection string

const (
	SortNone       SortDirection = "none"
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// CatalogService derives storefront views from the raw collections.
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// StorefrontCategories returns the Active categories visible in a market.
func (s *CatalogService) StorefrontCategories(ctx context.Context, country models.CountryCode) []models.Category {
	ctx, span := util.StartSpan(ctx, "CatalogService.StorefrontCategories")
	defer span.End()

	return FilterStorefrontCategories(s.store.LoadCategories(ctx), country)
}

// StorefrontProducts returns the Active products of one category visible in a
// market, optionally searched and price-sorted.
func (s *CatalogService) StorefrontProducts(ctx context.Context, country models.CountryCode, categoryID, query string, lang models.Language, dir SortDirection) []models.Product {
	ctx, span := util.StartSpan(ctx, "CatalogService.StorefrontProducts")
	defer span.End()

	products := FilterStorefrontProducts(s.store.LoadProducts(ctx), country, categoryID)
	products = SearchProducts(products, query, lang)
	return SortByPrice(products, country, dir)
}

// GetCategory returns a category by id, scoped to the market.
func (s *CatalogService) GetCategory(ctx context.Context, id string, country models.CountryCode) (models.Category, error) {
	for _, c := range s.store.LoadCategories(ctx) {
		if c.ID == id && c.Status == models.StatusActive && c.VisibleIn(country) {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}

// GetProduct returns a product by id, scoped to the market.
func (s *CatalogService) GetProduct(ctx context.Context, id string, country models.CountryCode) (models.Product, error) {
	for _, p := range s.store.LoadProducts(ctx) {
		if p.ID == id && p.VisibleIn(country) {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// CategoryLabel resolves a product's category name for display. Products
// orphaned by a category delete fall back to a generic label instead of
// erroring.
func (s *CatalogService) CategoryLabel(ctx context.Context, p models.Product, lang models.Language) string {
	for _, c := range s.store.LoadCategories(ctx) {
		if c.ID == p.CategoryID {
			return c.LocalizedName(lang)
		}
	}
	if lang == models.LanguageDE {
		return "Allgemein"
	}
	return "General"
}

// FilterStorefrontCategories keeps categories that are Active and visible in
// the market.
func FilterStorefrontCategories(categories []models.Category, country models.CountryCode) []models.Category {
	var out []models.Category
	for _, c := range categories {
		if c.Status == models.StatusActive && c.VisibleIn(country) {
			out = append(out, c)
		}
	}
	return out
}

// FilterStorefrontProducts keeps products that are Active, belong to the
// category and are visible in the market. An empty categoryID matches all.
func FilterStorefrontProducts(products []models.Product, country models.CountryCode, categoryID string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Status != models.StatusActive || !p.VisibleIn(country) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchProducts keeps products whose localized name contains the query,
// case-insensitively. The default-locale name stands in when no localized
// name is set.
func SearchProducts(products []models.Product, query string, lang models.Language) []models.Product {
	if query == "" {
		return products
	}

	needle := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.LocalizedName(lang)), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortByPrice orders products by the market's price amount. The sort is
// stable; products without a price entry for the market sort as amount 0.
// SortNone preserves the original order.
func SortByPrice(products []models.Product, country models.CountryCode, dir SortDirection) []models.Product {
	if dir != SortAscending && dir != SortDescending {
		return products
	}

	out := make([]models.Product, len(products))
	copy(out, products)

	amount := func(p models.Product) float64 {
		if price, ok := p.PriceFor(country); ok {
			return price.Amount
		}
		return 0
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortAscending {
			return amount(out[i]) < amount(out[j])
		}
		return amount(out[i]) > amount(out[j])
	})
	return out
}

// ClampQuantity bounds a buyer-selected quantity to 1..stock. A zero-stock
// product clamps to 0; increments past the ceiling and decrements below 1 are
// no-ops for callers that clamp their adjusted value.
func ClampQuantity(p models.Product, quantity int) int {
	if p.Stock <= 0 {
		return 0
	}
	if quantity < 1 {
		return 1
	}
	if quantity > p.Stock {
		return p.Stock
	}
	return quantity
}

// CanAddToCart reports whether the add-to-cart action is enabled.
func CanAddToCart(p models.Product) bool {
	return p.InStock()
}

// AdminProductFilter narrows the back-office product list. Zero values mean
// "All" for their dimension.
type AdminProductFilter struct {
	Query      string
	CategoryID string
	Market     models.CountryCode
	Status     models.Status
}

// FilterAdminProducts applies the back-office list filters. The search matches
// the default and German names.
func FilterAdminProducts(products []models.Product, f AdminProductFilter) []models.Product {
	needle := strings.ToLower(f.Query)

	var out []models.Product
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.NameDE), needle) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Market != "" && !p.VisibleIn(f.Market) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}
