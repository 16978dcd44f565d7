package search

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const requestTimeout = 3 * time.Second

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":        {"type": "keyword"},
      "content":   {"type": "text"},
      "authorId":  {"type": "keyword"},
      "username":  {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "createdAt": {"type": "date"},
      "updatedAt": {"type": "date"}
    }
  }
}`

// NewElasticClient creates an Elasticsearch client with optional basic auth.
func NewElasticClient(cfg config.Search) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating elasticsearch client: %w", err)
	}

	return es, nil
}

// ElasticIndex implements [TweetIndex] and is also an events.Sink that keeps
// the index in sync with tweet mutations.
type ElasticIndex struct {
	es     *elasticsearch.Client
	index  string
	logger *logger.Logger
}

func NewElasticIndex(es *elasticsearch.Client, index string, logger *logger.Logger) *ElasticIndex {
	return &ElasticIndex{
		es:     es,
		index:  index,
		logger: logger,
	}
}

// EnsureIndex creates the index with its mapping unless it already exists.
func (e *ElasticIndex) EnsureIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.IndicesExistsRequest{Index: []string{e.index}}.Do(ctx, e.es)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIndexRequestFailed, err)
	}
	_ = res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = esapi.IndicesCreateRequest{
		Index: e.index,
		Body:  strings.NewReader(indexMapping),
	}.Do(ctx, e.es)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIndexRequestFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return fmt.Errorf("%w: create index: %s", ErrIndexRequestFailed, res.Status())
	}

	e.logger.Info().Str("index", e.index).Msg("search index created")
	return nil
}

func (e *ElasticIndex) Name() string {
	return "elasticsearch"
}

// Handle indexes created and updated tweets and removes deleted ones.
//
// Writes use external versioning: a tweet is versioned by its updatedAt and
// a deletion by the time it happened, both in microseconds. An event that
// arrives after a newer one for the same tweet is rejected by Elasticsearch
// with 409 and dropped here.
func (e *ElasticIndex) Handle(ctx context.Context, event models.TweetEvent) error {
	switch event.Type {
	case models.TweetCreated, models.TweetUpdated:
		return e.indexTweet(ctx, event.Tweet, documentVersion(event.Tweet.UpdatedAt))
	case models.TweetDeleted:
		return e.deleteTweet(ctx, event.Tweet.ID, documentVersion(event.OccurredAt))
	default:
		return nil
	}
}

// documentVersion returns nil for the zero time, which writes unversioned.
func documentVersion(t time.Time) *int {
	if t.IsZero() {
		return nil
	}
	return esapi.IntPtr(int(t.UnixMicro()))
}

func versionType(version *int) string {
	if version == nil {
		return ""
	}
	return "external"
}

func (e *ElasticIndex) indexTweet(ctx context.Context, tweet models.TweetResponse, version *int) error {
	body, err := json.Marshal(tweet)
	if err != nil {
		return fmt.Errorf("error encoding tweet: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.IndexRequest{
		Index:      e.index,
		DocumentID:  tweet.ID,
		Body:        bytes.NewReader(body),
		Refresh:     "false",
		Version:     version,
		VersionType: versionType(version),
	}.Do(ctx, e.es)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIndexRequestFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == http.StatusConflict {
		e.logger.Debug().Str("tweet_id", tweet.ID).Msg("stale tweet event skipped")
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("%w: index tweet %s: %s", ErrIndexRequestFailed, tweet.ID, res.Status())
	}
	return nil
}

func (e *ElasticIndex) deleteTweet(ctx context.Context, tweetID string, version *int) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.DeleteRequest{
		Index:       e.index,
		DocumentID:  tweetID,
		Version:     version,
		VersionType: versionType(version),
	}.Do(ctx, e.es)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIndexRequestFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	// never indexed, already gone, or rewritten by a newer event
	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusConflict {
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("%w: delete tweet %s: %s", ErrIndexRequestFailed, tweetID, res.Status())
	}
	return nil
}

// Search runs a match query on content and username. Non-positive or too
// large limits fall back to [DefaultLimit].
func (e *ElasticIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"content^2", "username"},
			},
		},
		"size":    limit,
		"_source": false,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding search query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := e.es.Search(
		e.es.Search.WithContext(ctx),
		e.es.Search.WithIndex(e.index),
		e.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchRequestFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchRequestFailed, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrSearchRequestFailed, err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}
