package rotation

import (
	"context"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/store"

	"go.uber.org/zap"
)

type slot struct {
	country   models.CountryCode
	placement models.BannerPlacement
}

// Manager owns one carousel per (country, placement) storefront slot. Admin
// banner mutations and the event worker both funnel through Refresh, so every
// carousel reacts to an eligibility-set change with a reset index and a fresh
// timer.
type Manager struct {
	store     *store.Store
	carousels map[slot]*Carousel
	logger    *zap.Logger
}

// View is the read-only carousel projection a presentation layer binds to.
type View struct {
	State  State          `json:"state"`
	Index  int            `json:"index"`
	Count  int            `json:"count"`
	Banner *models.Banner `json:"banner,omitempty"`
}

// NewManager creates carousels for every storefront slot and primes them from
// the store.
func NewManager(ctx context.Context, st *store.Store, interval time.Duration, logger *zap.Logger) *Manager {
	m := &Manager{
		store:     st,
		carousels: make(map[slot]*Carousel),
		logger:    logger,
	}

	for _, country := range models.AvailableCountries {
		for _, placement := range []models.BannerPlacement{models.PlacementTop, models.PlacementMiddle} {
			m.carousels[slot{country, placement}] = NewCarousel(interval)
		}
	}

	m.Refresh(ctx)
	return m
}

// Refresh reloads the banner collection and feeds it to every carousel.
func (m *Manager) Refresh(ctx context.Context) {
	banners := m.store.LoadBanners(ctx)
	for s, c := range m.carousels {
		c.SetBanners(banners, s.placement, s.country)
	}
	m.logger.Debug("Carousels refreshed", zap.Int("banners", len(banners)))
}

// View returns the current projection for one storefront slot.
func (m *Manager) View(country models.CountryCode, placement models.BannerPlacement) View {
	c, ok := m.carousels[slot{country, placement}]
	if !ok {
		return View{State: StateIdle}
	}

	banner, index, count, state := c.Snapshot()
	v := View{State: state, Index: index, Count: count}
	if count > 0 {
		v.Banner = &banner
	}
	return v
}

// Next advances one slot's carousel manually.
func (m *Manager) Next(country models.CountryCode, placement models.BannerPlacement) {
	if c, ok := m.carousels[slot{country, placement}]; ok {
		c.Next()
	}
}

// Prev steps one slot's carousel back manually.
func (m *Manager) Prev(country models.CountryCode, placement models.BannerPlacement) {
	if c, ok := m.carousels[slot{country, placement}]; ok {
		c.Prev()
	}
}

// GoTo jumps one slot's carousel to an explicit index.
func (m *Manager) GoTo(country models.CountryCode, placement models.BannerPlacement, index int) {
	if c, ok := m.carousels[slot{country, placement}]; ok {
		c.GoTo(index)
	}
}

// StopAll cancels every carousel timer. Called on shutdown; a timer must never
// outlive the surface it was driving.
func (m *Manager) StopAll() {
	for _, c := range m.carousels {
		c.Stop()
	}
}
