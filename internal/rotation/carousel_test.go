package rotation

import (
	"testing"
	"time"

	"catalog-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func banner(id string, placement models.BannerPlacement, status models.Status, isDefault bool, countries ...models.CountryCode) models.Banner {
	return models.Banner{
		ID:        id,
		Title:     "Banner " + id,
		Placement: placement,
		Status:    status,
		IsDefault: isDefault,
		Countries: countries,
	}
}

func ids(banners []models.Banner) []string {
	out := make([]string, 0, len(banners))
	for _, b := range banners {
		out = append(out, b.ID)
	}
	return out
}

func TestEligibleTargetedBeatsDefault(t *testing.T) {
	banners := []models.Banner{
		banner("in1", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("in2", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("fallback", models.PlacementTop, models.StatusActive, true),
	}

	got := Eligible(banners, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, []string{"in1", "in2"}, ids(got))
}

func TestEligibleFallsBackToDefault(t *testing.T) {
	banners := []models.Banner{
		banner("in1", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("fallback", models.PlacementTop, models.StatusActive, true),
	}

	got := Eligible(banners, models.PlacementTop, models.CountryGermany)
	assert.Equal(t, []string{"fallback"}, ids(got))
}

func TestEligibleEmptyWithoutDefault(t *testing.T) {
	banners := []models.Banner{
		banner("in1", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
	}

	assert.Empty(t, Eligible(banners, models.PlacementTop, models.CountryGermany))
}

func TestEligibleFiltersStatusAndPlacement(t *testing.T) {
	banners := []models.Banner{
		banner("top", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("middle", models.PlacementMiddle, models.StatusActive, false, models.CountryIndia),
		banner("off", models.PlacementTop, models.StatusInactive, false, models.CountryIndia),
		banner("offdefault", models.PlacementTop, models.StatusInactive, true),
	}

	got := Eligible(banners, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, []string{"top"}, ids(got))
}

func TestEligibleUntargetedNeedsDefaultFlag(t *testing.T) {
	// A banner listing no countries targets nobody; it surfaces only as a
	// default fallback.
	plain := banner("plain", models.PlacementTop, models.StatusActive, false)

	assert.Empty(t, Eligible([]models.Banner{plain}, models.PlacementTop, models.CountryIndia))

	plain.IsDefault = true
	got := Eligible([]models.Banner{plain}, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, []string{"plain"}, ids(got))
}

func threeBannerCarousel(t *testing.T, interval time.Duration) *Carousel {
	t.Helper()
	c := NewCarousel(interval)
	c.SetBanners([]models.Banner{
		banner("a", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("b", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("c", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
	}, models.PlacementTop, models.CountryIndia)
	t.Cleanup(c.Stop)
	return c
}

func TestManualNavigationWraps(t *testing.T) {
	c := threeBannerCarousel(t, time.Hour)

	assert.Equal(t, 0, c.Index())
	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())

	c.Prev()
	assert.Equal(t, 2, c.Index())

	c.GoTo(1)
	assert.Equal(t, 1, c.Index())
	c.GoTo(7)
	assert.Equal(t, 1, c.Index())
	c.GoTo(-1)
	assert.Equal(t, 1, c.Index())
}

func TestFullCycleReturnsToStart(t *testing.T) {
	c := threeBannerCarousel(t, time.Hour)

	for i := 0; i < 3; i++ {
		c.Next()
	}
	assert.Equal(t, 0, c.Index())
}

func TestTimerAdvances(t *testing.T) {
	c := threeBannerCarousel(t, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return c.Index() > 0
	}, time.Second, time.Millisecond)
}

func TestStatesByEligibleCount(t *testing.T) {
	c := NewCarousel(time.Hour)
	t.Cleanup(c.Stop)

	assert.Equal(t, StateIdle, c.State())
	_, ok := c.Current()
	assert.False(t, ok)

	single := []models.Banner{banner("only", models.PlacementTop, models.StatusActive, false, models.CountryIndia)}
	c.SetBanners(single, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, StateSingle, c.State())

	c.Next()
	assert.Equal(t, 0, c.Index(), "navigation is a no-op with a single banner")

	many := append(single,
		banner("more", models.PlacementTop, models.StatusActive, false, models.CountryIndia))
	c.SetBanners(many, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, StateRotating, c.State())
}

func TestSetBannersResetsPosition(t *testing.T) {
	c := threeBannerCarousel(t, time.Hour)
	c.Next()
	c.Next()
	require.Equal(t, 2, c.Index())

	c.SetBanners([]models.Banner{
		banner("x", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
		banner("y", models.PlacementTop, models.StatusActive, false, models.CountryIndia),
	}, models.PlacementTop, models.CountryIndia)

	current, index, count, state := c.Snapshot()
	assert.Equal(t, "x", current.ID)
	assert.Equal(t, 0, index)
	assert.Equal(t, 2, count)
	assert.Equal(t, StateRotating, state)
}

func TestStopCancelsRotation(t *testing.T) {
	c := threeBannerCarousel(t, 5*time.Millisecond)
	c.Stop()

	index := c.Index()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, index, c.Index())

	c.Next()
	assert.Equal(t, index, c.Index())
}

func TestStopIsIdempotent(t *testing.T) {
	c := threeBannerCarousel(t, time.Hour)
	c.Stop()
	c.Stop()

	c.SetBanners(nil, models.PlacementTop, models.CountryIndia)
	assert.Equal(t, StateRotating, c.State(), "a stopped carousel ignores new banner sets")
}
