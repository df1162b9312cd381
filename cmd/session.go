package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"ampview/internal/config"
	"ampview/internal/library"
	"ampview/pkg/ampache"
)

// openBrowser loads configuration, connects to the server (performing
// the handshake) and wires up the cache. The returned cleanup func
// closes the cache and must always be called.
func openBrowser(ctx context.Context) (*library.Browser, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, nil, fmt.Errorf("server, username and password must be configured (config.yaml or AMPVIEW_* environment)")
	}

	logger := setupLogger(rootLogLevel)

	client, err := ampache.Connect(ctx, ampache.Config{
		ServerURL: cfg.Server,
		Username:  cfg.Username,
		Password:  cfg.Password,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		Logger: debugLogger{logger: logger},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cfg.Server, err)
	}

	var cache *library.Cache
	cleanup := func() {}
	if !rootNoCache && cfg.CacheDB != "" {
		cache, err = library.NewCache(cfg.CacheDB)
		if err != nil {
			// A broken cache should not block the query.
			logger.Warn().Err(err).Str("path", cfg.CacheDB).Msg("Cache unavailable")
			cache = nil
		} else {
			cleanup = func() { _ = cache.Close() }
		}
	}

	ttl := time.Duration(cfg.CacheTTL) * time.Second
	return library.NewBrowser(client, cache, ttl, logger), cleanup, nil
}

// setupLogger creates a console logger at the requested level.
func setupLogger(logLevel string) zerolog.Logger {
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// debugLogger adapts zerolog to the ampache client's Logger interface.
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// str renders an optional string field, "-" when absent.
func str(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// num renders an optional integer field, "-" when absent.
func num(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// duration renders an optional seconds field as m:ss, "-" when absent.
func duration(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", *v/60, *v%60)
}
