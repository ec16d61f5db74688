// Package events publishes notifications about resource changes for
// external consumers, e.g. a worker seeding default distributions for
// fresh categories.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CategoryCreated is emitted after a category has been persisted.
type CategoryCreated struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Title      string    `json:"title"`
	CreatedBy  uuid.UUID `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Publisher is the notification sink the creation flows invoke after a
// successful commit.
type Publisher interface {
	PublishCategoryCreated(ctx context.Context, event CategoryCreated) error
	Close() error
}

// Default is the publisher used by the API handlers. main swaps it for an
// AMQP publisher when a broker is configured.
var Default Publisher = LogPublisher{}

// PublishCategoryCreated sends the event through the default publisher.
// Publishing is best effort: failures are logged and never fail the
// request that triggered the event.
func PublishCategoryCreated(ctx context.Context, event CategoryCreated) {
	err := Default.PublishCategoryCreated(ctx, event)
	if err != nil {
		log.Error().Err(err).Str("categoryId", event.CategoryID.String()).Msg("publishing category created event failed")
	}
}

// LogPublisher writes events to the log instead of a broker. It is the
// default when no AMQP_URL is configured.
type LogPublisher struct{}

func (LogPublisher) PublishCategoryCreated(_ context.Context, event CategoryCreated) error {
	log.Debug().
		Str("categoryId", event.CategoryID.String()).
		Str("title", event.Title).
		Str("createdBy", event.CreatedBy.String()).
		Msg("category created")

	return nil
}

func (LogPublisher) Close() error {
	return nil
}
