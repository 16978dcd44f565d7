package events

import (
	"context"

	"github.com/MKhiriev/go-tweet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/events_mock.go -package=mock

// Emitter accepts events without blocking.
type Emitter interface {
	Emit(ctx context.Context, event models.TweetEvent)
}

// Sink consumes events drained from the bus.
type Sink interface {
	// Name identifies the sink in logs.
	Name() string
	Handle(ctx context.Context, event models.TweetEvent) error
}
