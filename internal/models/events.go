package models

import "time"

// Event types
const (
	EventTypeCategorySaved   = "CATEGORY_SAVED"
	EventTypeCategoryDeleted = "CATEGORY_DELETED"
	EventTypeProductSaved    = "PRODUCT_SAVED"
	EventTypeProductDeleted  = "PRODUCT_DELETED"
	EventTypeBannerSaved     = "BANNER_SAVED"
	EventTypeBannerDeleted   = "BANNER_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// CategorySavedEvent published when a category is created or edited
type CategorySavedEvent struct {
	BaseEvent
	Category Category `json:"category"`
	Created  bool     `json:"created"`
}

// CategoryDeletedEvent published when a category is removed
type CategoryDeletedEvent struct {
	BaseEvent
	CategoryID string `json:"category_id"`
}

// ProductSavedEvent published when a product is created or edited
type ProductSavedEvent struct {
	BaseEvent
	Product Product `json:"product"`
	Created bool    `json:"created"`
}

// ProductDeletedEvent published when a product is removed
type ProductDeletedEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
}

// BannerSavedEvent published when a banner is created or edited
type BannerSavedEvent struct {
	BaseEvent
	Banner  Banner `json:"banner"`
	Created bool   `json:"created"`
}

// BannerDeletedEvent published when a banner is removed
type BannerDeletedEvent struct {
	BaseEvent
	BannerID string `json:"banner_id"`
}
