package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tweet/internal/events"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
)

// sinkTimeout bounds a single sink call.
const sinkTimeout = 5 * time.Second

// EventWorker drains tweet events and hands each one to every sink in order.
// Sink failures are logged and do not stop the worker.
type EventWorker struct {
	events <-chan models.TweetEvent
	sinks  []events.Sink
	logger *logger.Logger
}

func NewEventWorker(source <-chan models.TweetEvent, logger *logger.Logger, sinks ...events.Sink) *EventWorker {
	return &EventWorker{
		events: source,
		sinks:  sinks,
		logger: logger,
	}
}

// Run returns when the source channel is closed. Cancelling ctx does not stop
// the loop, so events buffered before shutdown are still delivered; it only
// stops being used as the parent of sink calls.
func (w *EventWorker) Run(ctx context.Context) {
	base := context.WithoutCancel(ctx)

	for event := range w.events {
		w.dispatch(base, event)
	}

	w.logger.Debug().Str("func", "EventWorker.Run").Msg("event source closed, worker stopped")
}

func (w *EventWorker) dispatch(ctx context.Context, event models.TweetEvent) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, sinkTimeout)
		err := sink.Handle(sinkCtx, event)
		cancel()

		if err != nil {
			w.logger.Err(err).
				Str("func", "EventWorker.dispatch").
				Str("sink", sink.Name()).
				Str("event_type", string(event.Type)).
				Str("tweet_id", event.Tweet.ID).
				Msg("sink failed to handle event")
		}
	}
}
