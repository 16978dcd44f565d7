package events

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
)

// DefaultBufferSize is used when NewBus is given a non-positive size.
const DefaultBufferSize = 256

// Bus is a bounded in-memory queue of tweet events.
type Bus struct {
	events chan models.TweetEvent
	logger *logger.Logger

	mu     sync.RWMutex
	closed bool
}

func NewBus(size int, logger *logger.Logger) *Bus {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Bus{
		events: make(chan models.TweetEvent, size),
		logger: logger,
	}
}

// Emit enqueues event. It drops the event when the buffer is full or the
// bus is closed.
func (b *Bus) Emit(ctx context.Context, event models.TweetEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	select {
	case b.events <- event:
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "Bus.Emit").
			Str("event_type", string(event.Type)).
			Str("tweet_id", event.Tweet.ID).
			Msg("event buffer is full, dropping event")
	}
}

// Events returns the receive side of the bus. It is closed by Close.
func (b *Bus) Events() <-chan models.TweetEvent {
	return b.events
}

// Close stops accepting events. Already buffered events stay readable.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.events)
}

// NopEmitter discards every event.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, models.TweetEvent) {}
