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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-server-timeout http request timeout (e.g., "15s")
//	-r remote database base URL
//	-auth-token remote access token
//	-request-timeout remote read timeout (e.g., "10s")
//	-translations-path remote translations path
//	-version-path remote version counter path
//	-disable-sync never contact the remote source
//	-stream-retry pause between subscription reconnects (e.g., "5s")
//	-d cache DSN (sqlite file, :memory: or postgres URL)
//	-default-locale default locale
//	-fallback-locale fallback locale
//	-storage-key cache key of the locale preference
//	-bundle built-in locale table JSON file
//	-log-level zerolog level
//	-poll-interval-ms fallback polling interval, 0 disables
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("locale-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var serverTimeout time.Duration
	var remoteAddress, authToken string
	var requestTimeout, streamRetry time.Duration
	var translationsPath, versionPath string
	var disableSync bool
	var databaseDSN string
	var defaultLocale, fallbackLocale, storageKey, bundlePath string
	var logLevel string
	var pollInterval string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "HTTP request timeout (e.g., 15s)")
	fs.StringVar(&remoteAddress, "r", "", "Remote database base URL")
	fs.StringVar(&authToken, "auth-token", "", "Remote access token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote read timeout (e.g., 10s)")
	fs.StringVar(&translationsPath, "translations-path", "", "Remote translations path")
	fs.StringVar(&versionPath, "version-path", "", "Remote version counter path")
	fs.BoolVar(&disableSync, "disable-sync", false, "Disable remote sync")
	fs.DurationVar(&streamRetry, "stream-retry", 0, "Subscription reconnect delay (e.g., 5s)")
	fs.StringVar(&databaseDSN, "d", "", "Cache DSN")
	fs.StringVar(&defaultLocale, "default-locale", "", "Default locale")
	fs.StringVar(&fallbackLocale, "fallback-locale", "", "Fallback locale")
	fs.StringVar(&storageKey, "storage-key", "", "Locale preference cache key")
	fs.StringVar(&bundlePath, "bundle", "", "Built-in locale table JSON file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&pollInterval, "poll-interval-ms", "", "Fallback polling interval in milliseconds, 0 disables")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DefaultLocale:  defaultLocale,
			FallbackLocale: fallbackLocale,
			StorageKey:     storageKey,
			BundlePath:     bundlePath,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			Address:           remoteAddress,
			AuthToken:         authToken,
			RequestTimeout:    requestTimeout,
			TranslationsPath:  translationsPath,
			VersionPath:       versionPath,
			DisableRemoteSync: disableSync,
			StreamRetryDelay:  streamRetry,
		},
		Workers:      Workers{PollIntervalMS: pollInterval},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
