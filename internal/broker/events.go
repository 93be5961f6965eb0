package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing catalog change events. Keys carry the
// entity type and id so one entity's history stays on one partition.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishCategorySaved publishes a CategorySaved event
func (ep *EventPublisher) PublishCategorySaved(ctx context.Context, event *models.CategorySavedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("category-%s", event.Category.ID), event)
}

// PublishCategoryDeleted publishes a CategoryDeleted event
func (ep *EventPublisher) PublishCategoryDeleted(ctx context.Context, event *models.CategoryDeletedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("category-%s", event.CategoryID), event)
}

// PublishProductSaved publishes a ProductSaved event
func (ep *EventPublisher) PublishProductSaved(ctx context.Context, event *models.ProductSavedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("product-%s", event.Product.ID), event)
}

// PublishProductDeleted publishes a ProductDeleted event
func (ep *EventPublisher) PublishProductDeleted(ctx context.Context, event *models.ProductDeletedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("product-%s", event.ProductID), event)
}

// PublishBannerSaved publishes a BannerSaved event
func (ep *EventPublisher) PublishBannerSaved(ctx context.Context, event *models.BannerSavedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("banner-%s", event.Banner.ID), event)
}

// PublishBannerDeleted publishes a BannerDeleted event
func (ep *EventPublisher) PublishBannerDeleted(ctx context.Context, event *models.BannerDeletedEvent) error {
	return ep.producer.PublishEvent(ctx, fmt.Sprintf("banner-%s", event.BannerID), event)
}

// EventHandler routes incoming catalog events to registered callbacks.
type EventHandler struct {
	onBannerChanged   func(context.Context) error
	onCategoryChanged func(context.Context) error
	onProductChanged  func(context.Context) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnBannerChanged registers a handler fired for any banner save or delete.
func (eh *EventHandler) OnBannerChanged(handler func(context.Context) error) {
	eh.onBannerChanged = handler
}

// OnCategoryChanged registers a handler fired for any category save or delete.
func (eh *EventHandler) OnCategoryChanged(handler func(context.Context) error) {
	eh.onCategoryChanged = handler
}

// OnProductChanged registers a handler fired for any product save or delete.
func (eh *EventHandler) OnProductChanged(handler func(context.Context) error) {
	eh.onProductChanged = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeBannerSaved, models.EventTypeBannerDeleted:
		if eh.onBannerChanged != nil {
			return eh.onBannerChanged(ctx)
		}

	case models.EventTypeCategorySaved, models.EventTypeCategoryDeleted:
		if eh.onCategoryChanged != nil {
			return eh.onCategoryChanged(ctx)
		}

	case models.EventTypeProductSaved, models.EventTypeProductDeleted:
		if eh.onProductChanged != nil {
			return eh.onProductChanged(ctx)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
