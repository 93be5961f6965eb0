package worker

import (
	"context"
	"log"

	"catalog-service/internal/broker"
	"catalog-service/internal/rotation"
)

// CarouselWorker consumes catalog change events and refreshes the rotation
// manager whenever the banner collection changes, so carousels on every
// instance track admin edits made elsewhere.
type CarouselWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	manager      *rotation.Manager
}

// NewCarouselWorker creates a new carousel worker
func NewCarouselWorker(consumer *broker.Consumer, manager *rotation.Manager) *CarouselWorker {
	eventHandler := broker.NewEventHandler()

	eventHandler.OnBannerChanged(func(ctx context.Context) error {
		manager.Refresh(ctx)
		return nil
	})

	return &CarouselWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		manager:      manager,
	}
}

// Start starts the worker
func (w *CarouselWorker) Start(ctx context.Context) error {
	log.Println("Starting carousel worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *CarouselWorker) Stop() error {
	log.Println("Stopping carousel worker...")
	return w.consumer.Close()
}
