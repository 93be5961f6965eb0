package service

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError rejects a save without mutating anything. Step points the
// product wizard at the step where the missing input is corrected.
type ValidationError struct {
	Entity string
	Reason string
	Step   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
}

// EventPublisher emits catalog change events. Publishing is best-effort: a
// broker failure is logged, never rolls back a persisted mutation.
type EventPublisher interface {
	PublishCategorySaved(ctx context.Context, event *models.CategorySavedEvent) error
	PublishCategoryDeleted(ctx context.Context, event *models.CategoryDeletedEvent) error
	PublishProductSaved(ctx context.Context, event *models.ProductSavedEvent) error
	PublishProductDeleted(ctx context.Context, event *models.ProductDeletedEvent) error
	PublishBannerSaved(ctx context.Context, event *models.BannerSavedEvent) error
	PublishBannerDeleted(ctx context.Context, event *models.BannerDeletedEvent) error
}

// CarouselRefresher is notified after banner mutations so live carousels
// recompute their eligible sets.
type CarouselRefresher interface {
	Refresh(ctx context.Context)
}

// AdminService runs the back-office mutation flows: validate the draft, apply
// it to the loaded collection, persist the whole collection, publish a change
// event. New entities are inserted newest-first for all three entity types
// (the inherited prepend/append split is intentionally normalized).
type AdminService struct {
	store     *store.Store
	publisher EventPublisher
	carousels CarouselRefresher
	logger    *zap.Logger
}

// NewAdminService creates a new admin service. publisher and carousels may be
// nil in tests.
func NewAdminService(st *store.Store, publisher EventPublisher, carousels CarouselRefresher) *AdminService {
	return &AdminService{
		store:     st,
		publisher: publisher,
		carousels: carousels,
		logger:    util.GetLogger(),
	}
}

// SaveCategory creates or edits a category. A draft with an empty ID is a
// create; otherwise the draft replaces the fields of the matching entity,
// keeping its identifier and creation date.
func (s *AdminService) SaveCategory(ctx context.Context, draft models.Category) (models.Category, error) {
	ctx, span := util.StartSpan(ctx, "AdminService.SaveCategory")
	defer span.End()

	if draft.Name == "" || len(draft.Countries) == 0 {
		util.ValidationFailuresTotal.WithLabelValues("category").Inc()
		return models.Category{}, &ValidationError{
			Entity: "category",
			Reason: "name and at least one country are required",
		}
	}

	categories := s.store.LoadCategories(ctx)

	created := draft.ID == ""
	if created {
		draft.ID = uuid.New().String()
		draft.CreatedAt = time.Now().Format(models.CreatedAtLayout)
		categories = append([]models.Category{draft}, categories...)
	} else {
		idx := -1
		for i, c := range categories {
			if c.ID == draft.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Category{}, fmt.Errorf("category not found: %s", draft.ID)
		}
		draft.CreatedAt = categories[idx].CreatedAt
		categories[idx] = draft
	}

	if err := s.store.SaveCategories(ctx, categories); err != nil {
		return models.Category{}, err
	}

	util.EntitiesSavedTotal.WithLabelValues("category").Inc()
	s.logger.Info("Category saved", zap.String("id", draft.ID), zap.Bool("created", created))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishCategorySaved(ctx, &models.CategorySavedEvent{
			BaseEvent: newBaseEvent(models.EventTypeCategorySaved),
			Category:  draft,
			Created:   created,
		})
	}, models.EventTypeCategorySaved)

	return draft, nil
}

// DeleteCategory removes a category and persists immediately. Products that
// reference the deleted id are left orphaned; the storefront renders them
// under a generic label.
func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "AdminService.DeleteCategory")
	defer span.End()

	categories := s.store.LoadCategories(ctx)
	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := s.store.SaveCategories(ctx, kept); err != nil {
		return err
	}

	util.EntitiesDeletedTotal.WithLabelValues("category").Inc()
	s.logger.Info("Category deleted", zap.String("id", id))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishCategoryDeleted(ctx, &models.CategoryDeletedEvent{
			BaseEvent:  newBaseEvent(models.EventTypeCategoryDeleted),
			CategoryID: id,
		})
	}, models.EventTypeCategoryDeleted)

	return nil
}

// SaveBanner creates or edits a banner. A banner without target countries is
// only valid as a default slide.
func (s *AdminService) SaveBanner(ctx context.Context, draft models.Banner) (models.Banner, error) {
	ctx, span := util.StartSpan(ctx, "AdminService.SaveBanner")
	defer span.End()

	if draft.Title == "" || draft.ImageURL == "" || (len(draft.Countries) == 0 && !draft.IsDefault) {
		util.ValidationFailuresTotal.WithLabelValues("banner").Inc()
		return models.Banner{}, &ValidationError{
			Entity: "banner",
			Reason: "title, image and a target region (or the default flag) are required",
		}
	}
	if draft.Placement == "" {
		draft.Placement = models.PlacementTop
	}
	if draft.Status == "" {
		draft.Status = models.StatusActive
	}

	banners := s.store.LoadBanners(ctx)

	created := draft.ID == ""
	if created {
		draft.ID = uuid.New().String()
		draft.CreatedAt = time.Now().Format(models.CreatedAtLayout)
		banners = append([]models.Banner{draft}, banners...)
	} else {
		idx := -1
		for i, b := range banners {
			if b.ID == draft.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Banner{}, fmt.Errorf("banner not found: %s", draft.ID)
		}
		draft.CreatedAt = banners[idx].CreatedAt
		banners[idx] = draft
	}

	if err := s.store.SaveBanners(ctx, banners); err != nil {
		return models.Banner{}, err
	}

	util.EntitiesSavedTotal.WithLabelValues("banner").Inc()
	s.logger.Info("Banner saved", zap.String("id", draft.ID), zap.Bool("created", created))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishBannerSaved(ctx, &models.BannerSavedEvent{
			BaseEvent: newBaseEvent(models.EventTypeBannerSaved),
			Banner:    draft,
			Created:   created,
		})
	}, models.EventTypeBannerSaved)

	s.refreshCarousels(ctx)
	return draft, nil
}

// DeleteBanner removes a banner and persists immediately.
func (s *AdminService) DeleteBanner(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "AdminService.DeleteBanner")
	defer span.End()

	banners := s.store.LoadBanners(ctx)
	kept := banners[:0]
	for _, b := range banners {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	if err := s.store.SaveBanners(ctx, kept); err != nil {
		return err
	}

	util.EntitiesDeletedTotal.WithLabelValues("banner").Inc()
	s.logger.Info("Banner deleted", zap.String("id", id))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishBannerDeleted(ctx, &models.BannerDeletedEvent{
			BaseEvent: newBaseEvent(models.EventTypeBannerDeleted),
			BannerID:  id,
		})
	}, models.EventTypeBannerDeleted)

	s.refreshCarousels(ctx)
	return nil
}

// SaveProduct creates or edits a product. The wizard builds the draft so that
// countries and prices stay in sync; nothing here revalidates collections
// edited out-of-band.
func (s *AdminService) SaveProduct(ctx context.Context, draft models.Product) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "AdminService.SaveProduct")
	defer span.End()

	if draft.Name == "" || draft.CategoryID == "" || len(draft.Countries) == 0 {
		util.ValidationFailuresTotal.WithLabelValues("product").Inc()
		return models.Product{}, &ValidationError{
			Entity: "product",
			Reason: "name, category and store visibility are required",
			Step:   StepIdentity,
		}
	}
	if draft.Status == "" {
		draft.Status = models.StatusActive
	}
	if draft.Stock < 0 {
		draft.Stock = 0
	}

	products := s.store.LoadProducts(ctx)

	created := draft.ID == ""
	if created {
		draft.ID = "prod_" + uuid.New().String()
		draft.CreatedAt = time.Now().Format(models.CreatedAtLayout)
		products = append([]models.Product{draft}, products...)
	} else {
		idx := -1
		for i, p := range products {
			if p.ID == draft.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Product{}, fmt.Errorf("product not found: %s", draft.ID)
		}
		draft.CreatedAt = products[idx].CreatedAt
		products[idx] = draft
	}

	if err := s.store.SaveProducts(ctx, products); err != nil {
		return models.Product{}, err
	}

	util.EntitiesSavedTotal.WithLabelValues("product").Inc()
	s.logger.Info("Product saved", zap.String("id", draft.ID), zap.Bool("created", created))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishProductSaved(ctx, &models.ProductSavedEvent{
			BaseEvent: newBaseEvent(models.EventTypeProductSaved),
			Product:   draft,
			Created:   created,
		})
	}, models.EventTypeProductSaved)

	return draft, nil
}

// DeleteProduct removes a product and persists immediately. No undo.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	ctx, span := util.StartSpan(ctx, "AdminService.DeleteProduct")
	defer span.End()

	products := s.store.LoadProducts(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.store.SaveProducts(ctx, kept); err != nil {
		return err
	}

	util.EntitiesDeletedTotal.WithLabelValues("product").Inc()
	s.logger.Info("Product deleted", zap.String("id", id))

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishProductDeleted(ctx, &models.ProductDeletedEvent{
			BaseEvent: newBaseEvent(models.EventTypeProductDeleted),
			ProductID: id,
		})
	}, models.EventTypeProductDeleted)

	return nil
}

// ListProducts returns the full back-office product list with filters applied.
func (s *AdminService) ListProducts(ctx context.Context, f AdminProductFilter) []models.Product {
	return FilterAdminProducts(s.store.LoadProducts(ctx), f)
}

// ListCategories returns the full back-office category list.
func (s *AdminService) ListCategories(ctx context.Context) []models.Category {
	return s.store.LoadCategories(ctx)
}

// ListBanners returns the full back-office banner list.
func (s *AdminService) ListBanners(ctx context.Context) []models.Banner {
	return s.store.LoadBanners(ctx)
}

func (s *AdminService) publish(ctx context.Context, fn func(EventPublisher) error, eventType string) {
	if s.publisher == nil {
		return
	}
	if err := fn(s.publisher); err != nil {
		util.EventPublishFailuresTotal.Inc()
		s.logger.Error("Failed to publish catalog event",
			zap.String("type", eventType), zap.Error(err))
		return
	}
	util.EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

func (s *AdminService) refreshCarousels(ctx context.Context) {
	if s.carousels != nil {
		s.carousels.Refresh(ctx)
	}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}
