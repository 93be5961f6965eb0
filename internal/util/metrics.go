package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_entities_saved_total",
		Help: "Total number of admin saves, by entity type",
	}, []string{"entity"})

	EntitiesDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_entities_deleted_total",
		Help: "Total number of admin deletes, by entity type",
	}, []string{"entity"})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_validation_failures_total",
		Help: "Total number of rejected admin saves, by entity type",
	}, []string{"entity"})

	SeedFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_snapshot_seed_fallbacks_total",
		Help: "Loads that fell back to the seed collection, by collection and reason",
	}, []string{"collection", "reason"})

	SnapshotSaveLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_snapshot_save_latency_seconds",
		Help:    "Latency of collection snapshot writes",
		Buckets: prometheus.DefBuckets,
	})

	RotationAdvancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_rotation_advances_total",
		Help: "Carousel index changes, by trigger (timer, manual)",
	}, []string{"trigger"})

	CarouselRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_carousel_refreshes_total",
		Help: "Total number of carousel eligibility refreshes",
	})

	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_events_published_total",
		Help: "Catalog change events published, by type",
	}, []string{"type"})

	EventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_event_publish_failures_total",
		Help: "Catalog change events that failed to publish",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
