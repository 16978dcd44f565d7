package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tweet/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange  string
	key       string
	published []amqp.Publishing
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange, f.key = exchange, key
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Handle(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, queue: "tweet_events"}

	event := newEvent("t-1", models.TweetUpdated)
	require.NoError(t, p.Handle(context.Background(), event))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "tweet_events", ch.key)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "tweet.updated", msg.Type)
	assert.Equal(t, "t-1", msg.MessageId)

	var decoded models.TweetEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.Tweet.ID, decoded.Tweet.ID)
	assert.Equal(t, event.Type, decoded.Type)
}

func TestAMQPPublisher_HandleError(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: amqp.ErrClosed}, queue: "q"}

	err := p.Handle(context.Background(), newEvent("t-1", models.TweetCreated))
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)

	var nilPublisher *AMQPPublisher
	assert.NoError(t, nilPublisher.Close())
}

func TestAMQPPublisher_Name(t *testing.T) {
	assert.Equal(t, "amqp", (&AMQPPublisher{}).Name())
}
