package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-service/internal/rotation"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewMemoryBackend())
	carousels := rotation.NewManager(context.Background(), st, time.Hour, util.GetLogger())
	t.Cleanup(carousels.StopAll)

	catalog := service.NewCatalogService(st)
	admin := service.NewAdminService(st, nil, carousels)

	router := gin.New()
	NewHandler(catalog, admin, carousels).SetupRoutes(router)
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestUnknownStorefrontCountry(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/storefront/france/categories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorefrontCategoriesScopedByCountry(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := decode(t, doJSON(t, router, http.MethodGet, "/api/v1/storefront/germany/categories", nil))
	assert.Equal(t, float64(3), resp["total"])
}

func TestStorefrontCategoryDetailLocalized(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/storefront/germany/categories/1?lang=DE", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Bio-Haarfarbe", resp["name"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/storefront/germany/categories/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/website-germany/dev", decode(t, w)["fallback"])
}

func TestStorefrontProductsFilterAndSort(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := decode(t, doJSON(t, router, http.MethodGet,
		"/api/v1/storefront/india/products?sort=asc", nil))
	require.Equal(t, float64(7), resp["total"])

	products := resp["products"].([]interface{})
	first := products[0].(map[string]interface{})
	last := products[len(products)-1].(map[string]interface{})
	assert.True(t, priceIn(t, first, "India") <= priceIn(t, last, "India"))

	resp = decode(t, doJSON(t, router, http.MethodGet,
		"/api/v1/storefront/india/products?q=indigo", nil))
	assert.Equal(t, float64(1), resp["total"])
}

func priceIn(t *testing.T, product map[string]interface{}, country string) float64 {
	t.Helper()
	for _, raw := range product["prices"].([]interface{}) {
		p := raw.(map[string]interface{})
		if p["country"] == country {
			return p["amount"].(float64)
		}
	}
	t.Fatalf("no %s price on product %v", country, product["id"])
	return 0
}

func TestStorefrontProductNotFoundCarriesFallback(t *testing.T) {
	router, _ := newTestRouter(t)

	// Kerala Indigo Powder only sells in India.
	w := doJSON(t, router, http.MethodGet, "/api/v1/storefront/germany/products/prod_1_2", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/website-germany/dev", decode(t, w)["fallback"])
}

func TestStorefrontProductDetail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/storefront/india/products/prod_1_0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, true, resp["priceResolved"])
	assert.Equal(t, "Organic Hair Colour", resp["category"])
	assert.Equal(t, true, resp["canAddToCart"])
}

func TestStorefrontBannersUseEligibility(t *testing.T) {
	router, _ := newTestRouter(t)

	// Seed banners target India: b1, b2 and the default b5.
	resp := decode(t, doJSON(t, router, http.MethodGet,
		"/api/v1/storefront/india/banners", nil))
	assert.Equal(t, float64(3), resp["total"])

	// Nothing is seeded for the Middle placement.
	resp = decode(t, doJSON(t, router, http.MethodGet,
		"/api/v1/storefront/india/banners?placement=Middle", nil))
	assert.Equal(t, float64(0), resp["total"])

	// German storefront renders the German copy.
	resp = decode(t, doJSON(t, router, http.MethodGet,
		"/api/v1/storefront/germany/banners?lang=DE", nil))
	banners := resp["banners"].([]interface{})
	require.NotEmpty(t, banners)
	first := banners[0].(map[string]interface{})
	assert.Equal(t, "Strahlendes Kastanienbraun", first["title"])
}

func TestCarouselNavigation(t *testing.T) {
	router, _ := newTestRouter(t)

	view := decode(t, doJSON(t, router, http.MethodGet, "/api/v1/storefront/india/carousel", nil))
	require.Equal(t, "Rotating", view["state"])
	require.Equal(t, float64(0), view["index"])

	view = decode(t, doJSON(t, router, http.MethodPost, "/api/v1/storefront/india/carousel/next", nil))
	assert.Equal(t, float64(1), view["index"])

	view = decode(t, doJSON(t, router, http.MethodPost, "/api/v1/storefront/india/carousel/prev", nil))
	assert.Equal(t, float64(0), view["index"])

	view = decode(t, doJSON(t, router, http.MethodPost,
		"/api/v1/storefront/india/carousel/goto", gin.H{"index": 1}))
	assert.Equal(t, float64(1), view["index"])
}

func TestAdminCategoryLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/categories", gin.H{
		"name":      "Tea",
		"countries": []string{"India"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	w = doJSON(t, router, http.MethodPut, "/api/v1/admin/categories/"+id, gin.H{
		"name":      "Tea & Infusions",
		"countries": []string{"India", "Germany"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tea & Infusions", decode(t, w)["name"])

	resp := decode(t, doJSON(t, router, http.MethodGet, "/api/v1/admin/categories", nil))
	assert.Equal(t, float64(4), resp["total"])

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/categories/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	resp = decode(t, doJSON(t, router, http.MethodGet, "/api/v1/admin/categories", nil))
	assert.Equal(t, float64(3), resp["total"])
}

func TestAdminSaveValidationStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/categories", gin.H{
		"countries": []string{"India"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/products", gin.H{
		"name": "No market",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, float64(service.StepIdentity), decode(t, w)["step"])
}

func TestAdminSaveBannerRefreshesCarousel(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/banners", gin.H{
		"title":     "Flash Sale",
		"imageUrl":  "https://example.com/flash.jpg",
		"placement": "Top",
		"status":    "Active",
		"countries": []string{"India"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The new banner lands at the front of the eligible set and the
	// carousel restarts from it.
	view := decode(t, doJSON(t, router, http.MethodGet, "/api/v1/storefront/india/carousel", nil))
	require.Equal(t, float64(0), view["index"])
	banner := view["banner"].(map[string]interface{})
	assert.Equal(t, "Flash Sale", banner["title"])
}

func TestAdminProductFilters(t *testing.T) {
	router, _ := newTestRouter(t)

	resp := decode(t, doJSON(t, router, http.MethodGet, "/api/v1/admin/products?q=kerala", nil))
	assert.Equal(t, float64(1), resp["total"])

	resp = decode(t, doJSON(t, router, http.MethodGet, "/api/v1/admin/products?market=Germany", nil))
	assert.Equal(t, float64(7), resp["total"])
}

func TestAdminProductEditKeepsIdentity(t *testing.T) {
	router, st := newTestRouter(t)

	original := st.LoadProducts(context.Background())[0]
	w := doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/api/v1/admin/products/%s", original.ID), gin.H{
			"name":       "Renamed",
			"categoryId": original.CategoryID,
			"countries":  []string{"India"},
			"prices":     []gin.H{{"country": "India", "amount": 999, "currency": "INR"}},
		})
	require.Equal(t, http.StatusOK, w.Code)

	saved := decode(t, w)
	assert.Equal(t, original.ID, saved["id"])
	assert.Equal(t, original.CreatedAt, saved["createdAt"])
	assert.Equal(t, "Renamed", saved["name"])
}
