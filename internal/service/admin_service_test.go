package service

import (
	"context"
	"testing"

	"catalog-service/internal/models"
	"catalog-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRefresher struct {
	calls int
}

func (r *recordingRefresher) Refresh(context.Context) {
	r.calls++
}

func newTestAdmin(t *testing.T) (*AdminService, *store.Store, *recordingRefresher) {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	refresher := &recordingRefresher{}
	return NewAdminService(st, nil, refresher), st, refresher
}

func TestSaveCategoryValidation(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	_, err := admin.SaveCategory(ctx, models.Category{Countries: models.AvailableCountries})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Entity)

	_, err = admin.SaveCategory(ctx, models.Category{Name: "No Markets"})
	require.ErrorAs(t, err, &verr)

	// Rejected saves must not mutate the collection.
	assert.Len(t, st.LoadCategories(ctx), 3)
}

func TestSaveCategoryCreatePrependsNewestFirst(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	saved, err := admin.SaveCategory(ctx, models.Category{
		Name:      "New",
		Countries: []models.CountryCode{models.CountryIndia},
		Status:    models.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.CreatedAt)

	categories := st.LoadCategories(ctx)
	require.Len(t, categories, 4)
	assert.Equal(t, saved.ID, categories[0].ID)
}

func TestEditSeedCategorySurvivesReload(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	draft := st.LoadCategories(ctx)[0]
	require.Equal(t, "1", draft.ID)
	draft.Name = "Renamed Colour"

	saved, err := admin.SaveCategory(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "2023-10-01", saved.CreatedAt)

	reloaded := st.LoadCategories(ctx)
	require.Len(t, reloaded, 3)
	assert.Equal(t, "Renamed Colour", reloaded[0].Name)
	assert.NotEqual(t, store.SeedCategories()[0].Name, reloaded[0].Name)
}

func TestDeleteCategoryLeavesProductsOrphaned(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	products := st.LoadProducts(ctx)
	before := len(products)
	require.Equal(t, "1", products[0].CategoryID)

	require.NoError(t, admin.DeleteCategory(ctx, "1"))

	assert.Len(t, st.LoadCategories(ctx), 2)
	after := st.LoadProducts(ctx)
	require.Len(t, after, before)
	assert.Equal(t, "1", after[0].CategoryID)
}

func TestSaveBannerValidation(t *testing.T) {
	admin, _, _ := newTestAdmin(t)
	ctx := context.Background()

	cases := []models.Banner{
		{ImageURL: "img", Countries: models.AvailableCountries},           // no title
		{Title: "t", Countries: models.AvailableCountries},                // no image
		{Title: "t", ImageURL: "img"},                                     // no region, not default
	}
	for _, draft := range cases {
		_, err := admin.SaveBanner(ctx, draft)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	}

	// A default banner needs no target region.
	saved, err := admin.SaveBanner(ctx, models.Banner{Title: "t", ImageURL: "img", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, models.PlacementTop, saved.Placement)
	assert.Equal(t, models.StatusActive, saved.Status)
}

func TestSaveBannerRefreshesCarousels(t *testing.T) {
	admin, st, refresher := newTestAdmin(t)
	ctx := context.Background()

	saved, err := admin.SaveBanner(ctx, models.Banner{
		Title:     "Sale",
		ImageURL:  "img",
		Countries: []models.CountryCode{models.CountryIndia},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, refresher.calls)

	banners := st.LoadBanners(ctx)
	require.Len(t, banners, 6)
	assert.Equal(t, saved.ID, banners[0].ID)

	require.NoError(t, admin.DeleteBanner(ctx, saved.ID))
	assert.Equal(t, 2, refresher.calls)
	assert.Len(t, st.LoadBanners(ctx), 5)
}

func TestSaveProductValidationRefocusesIdentityStep(t *testing.T) {
	admin, _, _ := newTestAdmin(t)
	ctx := context.Background()

	_, err := admin.SaveProduct(ctx, models.Product{Name: "No Category"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepIdentity, verr.Step)
}

func TestSaveProductCreateAndEdit(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	created, err := admin.SaveProduct(ctx, models.Product{
		Name:       "New Shade",
		CategoryID: "1",
		Countries:  []models.CountryCode{models.CountryGermany},
		Prices: []models.ProductPrice{
			{Country: models.CountryGermany, Amount: 19, Currency: "EUR"},
		},
		Stock: 7,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)

	products := st.LoadProducts(ctx)
	assert.Equal(t, created.ID, products[0].ID)

	created.Stock = 9
	edited, err := admin.SaveProduct(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, created.CreatedAt, edited.CreatedAt)

	reloaded := st.LoadProducts(ctx)
	assert.Equal(t, 9, reloaded[0].Stock)
}

func TestDeleteProduct(t *testing.T) {
	admin, st, _ := newTestAdmin(t)
	ctx := context.Background()

	products := st.LoadProducts(ctx)
	target := products[0].ID

	require.NoError(t, admin.DeleteProduct(ctx, target))

	for _, p := range st.LoadProducts(ctx) {
		assert.NotEqual(t, target, p.ID)
	}
}
