package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tweet/internal/events"
	"github.com/MKhiriev/go-tweet/models"
)

// TweetEventsService decorates a TweetService and emits a models.TweetEvent
// after every successful Create, Update and Delete.
type TweetEventsService struct {
	inner   TweetService
	emitter events.Emitter
	now     func() time.Time
}

func NewTweetEventsService(emitter events.Emitter) TweetServiceWrapper {
	return &TweetEventsService{
		emitter: emitter,
		now:     time.Now,
	}
}

func (e *TweetEventsService) Create(ctx context.Context, authorID, content string) (models.Tweet, error) {
	tweet, err := e.inner.Create(ctx, authorID, content)
	if err == nil {
		e.emit(ctx, models.TweetCreated, models.NewTweetResponse(tweet))
	}
	return tweet, err
}

func (e *TweetEventsService) List(ctx context.Context) ([]models.Tweet, error) {
	return e.inner.List(ctx)
}

func (e *TweetEventsService) GetByID(ctx context.Context, tweetID string) (models.Tweet, error) {
	return e.inner.GetByID(ctx, tweetID)
}

func (e *TweetEventsService) Update(ctx context.Context, tweetID, requesterID, content string) (models.Tweet, error) {
	tweet, err := e.inner.Update(ctx, tweetID, requesterID, content)
	if err == nil {
		e.emit(ctx, models.TweetUpdated, models.NewTweetResponse(tweet))
	}
	return tweet, err
}

// Delete emits an event carrying only the tweet and author ids.
func (e *TweetEventsService) Delete(ctx context.Context, tweetID, requesterID string) (models.MessageResponse, error) {
	resp, err := e.inner.Delete(ctx, tweetID, requesterID)
	if err == nil {
		e.emit(ctx, models.TweetDeleted, models.TweetResponse{ID: tweetID, AuthorID: requesterID})
	}
	return resp, err
}

func (e *TweetEventsService) Search(ctx context.Context, query string) ([]models.Tweet, error) {
	return e.inner.Search(ctx, query)
}

func (e *TweetEventsService) Wrap(inner TweetService) TweetService {
	e.inner = inner
	return e
}

func (e *TweetEventsService) emit(ctx context.Context, typ models.TweetEventType, tweet models.TweetResponse) {
	e.emitter.Emit(ctx, models.TweetEvent{
		Type:       typ,
		Tweet:      tweet,
		OccurredAt: e.now().UTC(),
	})
}
