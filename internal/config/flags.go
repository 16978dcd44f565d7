package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from os.Args.
//
// Flags:
//
//	-a               http server address in format [host]:[port]
//	-grpc-address    grpc health server address in format [host]:[port]
//	-d               database DSN
//	-redis           redis address host:port
//	-c/-config       json file path with configs
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token duration (e.g. "24h", "30m")
//	-log-level       minimum log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g. "10s", "1m")
//	-rate-limit      requests per window per client IP
//	-trusted-proxies comma-separated proxy IPs or CIDRs allowed to set X-Forwarded-For
//	-broker-url      amqp url for tweet events
//	-search-address  elasticsearch address
//	-server-url      tweet API base url used by the client
//	-settings-dsn    client settings sqlite file
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var redisAddress string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var logLevel string
	var requestTimeout time.Duration
	var rateLimit int
	var trustedProxies string
	var brokerURL string
	var searchAddress string
	var serverURL string
	var settingsDSN string

	fs := flag.NewFlagSet("go-tweet", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per window per client IP")
	fs.StringVar(&trustedProxies, "trusted-proxies", "", "Comma-separated proxy IPs or CIDRs allowed to set X-Forwarded-For")
	fs.StringVar(&brokerURL, "broker-url", "", "AMQP URL for tweet events")
	fs.StringVar(&searchAddress, "search-address", "", "Elasticsearch address")
	fs.StringVar(&serverURL, "server-url", "", "Tweet API base URL (client)")
	fs.StringVar(&settingsDSN, "settings-dsn", "", "Client settings sqlite file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var proxies []string
	if trustedProxies != "" {
		proxies = strings.Split(trustedProxies, ",")
	}

	var searchAddresses []string
	if searchAddress != "" {
		searchAddresses = []string{searchAddress}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			TrustedProxies: proxies,
		},
		Broker: Broker{URL: brokerURL},
		Search: Search{Addresses: searchAddresses},
		Client: Client{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
			SettingsDSN:    settingsDSN,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String renders the address with net.JoinHostPort, so IPv6 hosts get
// brackets. An unset address is the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", "[ipv6]:port" and ":port". The host may be an IP
// literal or a DNS name such as a compose service ("api:8080").
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("invalid host %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// isHostname reports whether host is a syntactically valid DNS name.
func isHostname(host string) bool {
	if len(host) > 253 {
		return false
	}
	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			if !isAlnum && r != '-' {
				return false
			}
		}
	}
	return true
}
