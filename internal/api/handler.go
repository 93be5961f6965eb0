package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/rotation"
	"catalog-service/internal/service"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog   *service.CatalogService
	admin     *service.AdminService
	carousels *rotation.Manager
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *service.CatalogService, admin *service.AdminService, carousels *rotation.Manager) *Handler {
	return &Handler{
		catalog:   catalog,
		admin:     admin,
		carousels: carousels,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	storefront := v1.Group("/storefront/:country")
	{
		storefront.GET("/categories", h.storefrontCategories)
		storefront.GET("/categories/:id", h.storefrontCategory)
		storefront.GET("/products", h.storefrontProducts)
		storefront.GET("/products/:id", h.storefrontProduct)
		storefront.GET("/banners", h.storefrontBanners)
		storefront.GET("/carousel", h.carouselView)
		storefront.POST("/carousel/next", h.carouselNext)
		storefront.POST("/carousel/prev", h.carouselPrev)
		storefront.POST("/carousel/goto", h.carouselGoTo)
	}

	admin := v1.Group("/admin")
	{
		admin.GET("/categories", h.adminListCategories)
		admin.POST("/categories", h.adminSaveCategory)
		admin.PUT("/categories/:id", h.adminSaveCategory)
		admin.DELETE("/categories/:id", h.adminDeleteCategory)

		admin.GET("/banners", h.adminListBanners)
		admin.POST("/banners", h.adminSaveBanner)
		admin.PUT("/banners/:id", h.adminSaveBanner)
		admin.DELETE("/banners/:id", h.adminDeleteBanner)

		admin.GET("/products", h.adminListProducts)
		admin.POST("/products", h.adminSaveProduct)
		admin.PUT("/products/:id", h.adminSaveProduct)
		admin.DELETE("/products/:id", h.adminDeleteProduct)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// country resolves the :country path segment. Unknown markets are a 400.
func country(c *gin.Context) (models.CountryCode, bool) {
	switch c.Param("country") {
	case "india":
		return models.CountryIndia, true
	case "germany":
		return models.CountryGermany, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown storefront country"})
		return "", false
	}
}

func language(c *gin.Context) models.Language {
	if c.Query("lang") == string(models.LanguageDE) {
		return models.LanguageDE
	}
	return models.LanguageEN
}

// fallbackPath is the safe landing view a storefront redirects to when a
// requested reference cannot be resolved.
func fallbackPath(country models.CountryCode) string {
	if country == models.CountryGermany {
		return "/website-germany/dev"
	}
	return "/website-india/dev"
}

func (h *Handler) storefrontCategories(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	categories := h.catalog.StorefrontCategories(c.Request.Context(), cc)
	c.JSON(http.StatusOK, gin.H{
		"total":      len(categories),
		"categories": categories,
	})
}

func (h *Handler) storefrontCategory(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"), cc)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "Category not available in this storefront",
			"fallback": fallbackPath(cc),
		})
		return
	}

	lang := language(c)
	c.JSON(http.StatusOK, gin.H{
		"category":    category,
		"name":        category.LocalizedName(lang),
		"description": category.LocalizedDescription(lang),
	})
}

func (h *Handler) storefrontProducts(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	dir := service.SortNone
	switch c.Query("sort") {
	case "asc":
		dir = service.SortAscending
	case "desc":
		dir = service.SortDescending
	}

	products := h.catalog.StorefrontProducts(c.Request.Context(), cc,
		c.Query("category"), c.Query("q"), language(c), dir)

	c.JSON(http.StatusOK, gin.H{
		"total":    len(products),
		"products": products,
	})
}

func (h *Handler) storefrontProduct(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"), cc)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "Product not available in this storefront",
			"fallback": fallbackPath(cc),
		})
		return
	}

	lang := language(c)
	resp := gin.H{
		"product":       product,
		"name":          product.LocalizedName(lang),
		"description":   product.LocalizedDescription(lang),
		"category":      h.catalog.CategoryLabel(c.Request.Context(), product, lang),
		"maxQuantity":   product.Stock,
		"canAddToCart":  service.CanAddToCart(product),
		"priceResolved": false,
	}
	if price, ok := product.PriceFor(cc); ok {
		resp["priceResolved"] = true
		resp["price"] = price
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) storefrontBanners(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	lang := language(c)
	banners := rotation.Eligible(h.admin.ListBanners(c.Request.Context()), placement(c), cc)

	views := make([]gin.H, 0, len(banners))
	for _, b := range banners {
		views = append(views, gin.H{
			"id":       b.ID,
			"imageUrl": b.ImageURL,
			"title":    b.LocalizedTitle(lang),
			"subtitle": b.LocalizedSubtitle(lang),
			"link":     b.Link,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(views),
		"banners": views,
	})
}

func placement(c *gin.Context) models.BannerPlacement {
	if c.Query("placement") == string(models.PlacementMiddle) {
		return models.PlacementMiddle
	}
	return models.PlacementTop
}

func (h *Handler) carouselView(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.carousels.View(cc, placement(c)))
}

func (h *Handler) carouselNext(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}
	h.carousels.Next(cc, placement(c))
	c.JSON(http.StatusOK, h.carousels.View(cc, placement(c)))
}

func (h *Handler) carouselPrev(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}
	h.carousels.Prev(cc, placement(c))
	c.JSON(http.StatusOK, h.carousels.View(cc, placement(c)))
}

func (h *Handler) carouselGoTo(c *gin.Context) {
	cc, ok := country(c)
	if !ok {
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.carousels.GoTo(cc, placement(c), req.Index)
	c.JSON(http.StatusOK, h.carousels.View(cc, placement(c)))
}

func (h *Handler) adminListCategories(c *gin.Context) {
	categories := h.admin.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"total": len(categories), "categories": categories})
}

func (h *Handler) adminSaveCategory(c *gin.Context) {
	var draft models.Category
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		draft.ID = id
	}

	saved, err := h.admin.SaveCategory(c.Request.Context(), draft)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	c.JSON(saveStatus(c.Param("id") != ""), saved)
}

func (h *Handler) adminDeleteCategory(c *gin.Context) {
	if err := h.admin.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) adminListBanners(c *gin.Context) {
	banners := h.admin.ListBanners(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"total": len(banners), "banners": banners})
}

func (h *Handler) adminSaveBanner(c *gin.Context) {
	var draft models.Banner
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		draft.ID = id
	}

	saved, err := h.admin.SaveBanner(c.Request.Context(), draft)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	c.JSON(saveStatus(c.Param("id") != ""), saved)
}

func (h *Handler) adminDeleteBanner(c *gin.Context) {
	if err := h.admin.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) adminListProducts(c *gin.Context) {
	filter := service.AdminProductFilter{
		Query:      c.Query("q"),
		CategoryID: c.Query("category"),
	}
	if m := c.Query("market"); m != "" {
		filter.Market = models.CountryCode(m)
	}
	if s := c.Query("status"); s != "" {
		filter.Status = models.Status(s)
	}

	products := h.admin.ListProducts(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{"total": len(products), "products": products})
}

func (h *Handler) adminSaveProduct(c *gin.Context) {
	var draft models.Product
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		draft.ID = id
	}

	saved, err := h.admin.SaveProduct(c.Request.Context(), draft)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	c.JSON(saveStatus(c.Param("id") != ""), saved)
}

func (h *Handler) adminDeleteProduct(c *gin.Context) {
	if err := h.admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func saveStatus(edit bool) int {
	if edit {
		return http.StatusOK
	}
	return http.StatusCreated
}

// writeSaveError maps a rejected mutation to the right status: validation
// failures are 422 with a human-readable reason (and the wizard step to
// re-focus, for products), everything else is a server error.
func writeSaveError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		resp := gin.H{"error": verr.Reason}
		if verr.Step > 0 {
			resp["step"] = verr.Step
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save", "details": err.Error()})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
