package config

import "time"

// Built-in defaults, applied with the lowest priority.
const (
	DefaultTokenIssuer     = "go-tweet"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultBcryptCost      = 10
	DefaultLogLevel        = "info"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRateLimitWindow = time.Minute
	DefaultBrokerQueue     = "tweet_events"
	DefaultSearchIndex     = "tweets"
	DefaultServerURL       = "http://localhost:8080"
	DefaultSettingsDSN     = "go-tweet-client.db"
	DefaultClientLogFile   = "go-tweet-client.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			RateLimitWindow: DefaultRateLimitWindow,
		},
		Broker: Broker{
			Queue: DefaultBrokerQueue,
		},
		Search: Search{
			Index: DefaultSearchIndex,
		},
		Client: Client{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
			SettingsDSN:    DefaultSettingsDSN,
			LogFile:        DefaultClientLogFile,
		},
	}
}
