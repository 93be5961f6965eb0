package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// Storage keys, one JSON-serialized collection per key. The three collections
// are independent: saving one never touches the others.
const (
	KeyCategories = "catalog:categories"
	KeyProducts   = "catalog:products"
	KeyBanners    = "catalog:banners"
)

// ErrNotFound is returned by a Backend when no payload exists under a key.
var ErrNotFound = errors.New("snapshot not found")

// Backend is the keyed snapshot storage a Store persists through. Implementations
// exist for redis (primary), postgres and an in-memory map (tests, dev).
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Store reads and writes whole entity collections. A load/modify/save cycle is
// not guarded: two concurrent flows on the same collection are last-write-wins.
type Store struct {
	backend Backend
	logger  *zap.Logger
}

// New creates a Store on top of a snapshot backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		logger:  util.GetLogger(),
	}
}

// LoadCategories returns the persisted category collection, or the seed set when
// nothing is persisted yet or the payload cannot be decoded.
func (s *Store) LoadCategories(ctx context.Context) []models.Category {
	var categories []models.Category
	if !s.load(ctx, KeyCategories, &categories) {
		return SeedCategories()
	}
	return categories
}

// SaveCategories replaces the persisted category collection.
func (s *Store) SaveCategories(ctx context.Context, categories []models.Category) error {
	return s.save(ctx, KeyCategories, categories)
}

// LoadProducts returns the persisted product collection, or the seed set.
func (s *Store) LoadProducts(ctx context.Context) []models.Product {
	var products []models.Product
	if !s.load(ctx, KeyProducts, &products) {
		return SeedProducts()
	}
	return products
}

// SaveProducts replaces the persisted product collection.
func (s *Store) SaveProducts(ctx context.Context, products []models.Product) error {
	return s.save(ctx, KeyProducts, products)
}

// LoadBanners returns the persisted banner collection, or the seed set.
func (s *Store) LoadBanners(ctx context.Context) []models.Banner {
	var banners []models.Banner
	if !s.load(ctx, KeyBanners, &banners) {
		return SeedBanners()
	}
	return banners
}

// SaveBanners replaces the persisted banner collection.
func (s *Store) SaveBanners(ctx context.Context, banners []models.Banner) error {
	return s.save(ctx, KeyBanners, banners)
}

// load decodes the payload under key into out. It reports false when the caller
// should substitute the seed collection; a corrupt payload is recovered from
// silently, never surfaced as a failure.
func (s *Store) load(ctx context.Context, key string, out interface{}) bool {
	payload, err := s.backend.Get(ctx, key)
	if err != nil {
		reason := "missing"
		if !errors.Is(err, ErrNotFound) {
			reason = "backend_error"
			s.logger.Warn("Snapshot read failed, using seed collection",
				zap.String("key", key), zap.Error(err))
		}
		util.SeedFallbacksTotal.WithLabelValues(key, reason).Inc()
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		s.logger.Warn("Snapshot payload undecodable, using seed collection",
			zap.String("key", key), zap.Error(err))
		util.SeedFallbacksTotal.WithLabelValues(key, "corrupt").Inc()
		return false
	}

	return true
}

func (s *Store) save(ctx context.Context, key string, collection interface{}) error {
	start := time.Now()
	defer func() {
		util.SnapshotSaveLatency.Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", key, err)
	}

	if err := s.backend.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to persist collection %s: %w", key, err)
	}

	return nil
}
