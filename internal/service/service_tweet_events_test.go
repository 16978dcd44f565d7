package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tweet/internal/mock"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEventsService(t *testing.T) (TweetService, *mock.MockTweetRepository, *mock.MockEmitter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	inner, repo, _ := newTestTweetService(t, false)
	emitter := mock.NewMockEmitter(ctrl)

	wrapper := NewTweetEventsService(emitter).(*TweetEventsService)
	wrapper.now = func() time.Time { return testNow }

	return wrapper.Wrap(inner), repo, emitter
}

func TestTweetEventsService_Create_Emits(t *testing.T) {
	svc, repo, emitter := newTestEventsService(t)

	created := ownedTweet()
	repo.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).Return(created, nil)
	emitter.EXPECT().Emit(gomock.Any(), models.TweetEvent{
		Type:       models.TweetCreated,
		Tweet:      models.NewTweetResponse(created),
		OccurredAt: testNow,
	})

	tweet, err := svc.Create(context.Background(), testOwnerID, "hello")
	require.NoError(t, err)
	assert.Equal(t, created, tweet)
}

func TestTweetEventsService_Update_Emits(t *testing.T) {
	svc, repo, emitter := newTestEventsService(t)

	updated := ownedTweet()
	updated.Content = "edited"
	repo.EXPECT().GetTweet(gomock.Any(), testTweetID).Return(ownedTweet(), nil)
	repo.EXPECT().UpdateTweet(gomock.Any(), gomock.Any()).Return(updated, nil)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev models.TweetEvent) {
		assert.Equal(t, models.TweetUpdated, ev.Type)
		assert.Equal(t, "edited", ev.Tweet.Content)
	})

	_, err := svc.Update(context.Background(), testTweetID, testOwnerID, "edited")
	require.NoError(t, err)
}

func TestTweetEventsService_Delete_EmitsIDsOnly(t *testing.T) {
	svc, repo, emitter := newTestEventsService(t)

	repo.EXPECT().GetTweet(gomock.Any(), testTweetID).Return(ownedTweet(), nil)
	repo.EXPECT().DeleteTweet(gomock.Any(), testTweetID, testOwnerID).Return(nil)
	emitter.EXPECT().Emit(gomock.Any(), models.TweetEvent{
		Type:       models.TweetDeleted,
		Tweet:      models.TweetResponse{ID: testTweetID, AuthorID: testOwnerID},
		OccurredAt: testNow,
	})

	_, err := svc.Delete(context.Background(), testTweetID, testOwnerID)
	require.NoError(t, err)
}

func TestTweetEventsService_NoEventOnFailure(t *testing.T) {
	svc, repo, emitter := newTestEventsService(t)
	emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

	repo.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).Return(models.Tweet{}, errors.New("db down"))
	_, err := svc.Create(context.Background(), testOwnerID, "hello")
	assert.Error(t, err)

	repo.EXPECT().GetTweet(gomock.Any(), testTweetID).Return(ownedTweet(), nil)
	_, err = svc.Delete(context.Background(), testTweetID, testOtherID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), "bad-id", testOwnerID, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTweetEventsService_ReadsPassThrough(t *testing.T) {
	svc, repo, _ := newTestEventsService(t)

	repo.EXPECT().ListTweets(gomock.Any()).Return([]models.Tweet{ownedTweet()}, nil)
	tweets, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tweets, 1)

	repo.EXPECT().GetTweet(gomock.Any(), testTweetID).Return(ownedTweet(), nil)
	tweet, err := svc.GetByID(context.Background(), testTweetID)
	require.NoError(t, err)
	assert.Equal(t, testTweetID, tweet.TweetID)

	_, err = svc.Search(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrSearchNotAvailable)
}
