package config

import (
	"errors"
	"flag"
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

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-forum-url forum base URL
//	-api-key forum API key
//	-api-username forum API username
//	-forum-timeout forum request timeout (e.g., "10s")
//	-insecure-skip-verify skip forum TLS verification
//	-sso-secret DiscourseConnect shared secret
//	-sso-callback-url absolute callback URL
//	-token-sign-key token signing key
//	-hook-secret lifecycle hook HMAC key
//	-redis-url session store Redis URL
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var forumURL, apiKey, apiUsername string
	var forumTimeout time.Duration
	var insecureSkipVerify bool
	var ssoSecret, ssoCallbackURL string
	var tokenSignKey string
	var hookSecret string
	var redisURL string
	var requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&forumURL, "forum-url", "", "Forum base URL")
	fs.StringVar(&apiKey, "api-key", "", "Forum API key")
	fs.StringVar(&apiUsername, "api-username", "", "Forum API username")
	fs.DurationVar(&forumTimeout, "forum-timeout", 0, "Forum request timeout (e.g., 10s)")
	fs.BoolVar(&insecureSkipVerify, "insecure-skip-verify", false, "Skip forum TLS verification (development only)")
	fs.StringVar(&ssoSecret, "sso-secret", "", "DiscourseConnect shared secret")
	fs.StringVar(&ssoCallbackURL, "sso-callback-url", "", "Absolute SSO callback URL")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&hookSecret, "hook-secret", "", "Lifecycle hook HMAC key")
	fs.StringVar(&redisURL, "redis-url", "", "Session store Redis URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SSOSecret:      ssoSecret,
			SSOCallbackURL: ssoCallbackURL,
			TokenSignKey:   tokenSignKey,
			HookSecret:     hookSecret,
			LogLevel:       logLevel,
		},
		Adapter: Adapter{
			ForumURL:           forumURL,
			APIKey:             apiKey,
			APIUsername:        apiUsername,
			RequestTimeout:     forumTimeout,
			InsecureSkipVerify: insecureSkipVerify,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Session: Session{
			RedisURL: redisURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
