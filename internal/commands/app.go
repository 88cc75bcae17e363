package commands

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/skinledger/skinledger/internal/config"
	"github.com/skinledger/skinledger/internal/keys"
	"github.com/skinledger/skinledger/internal/logging"
	"github.com/skinledger/skinledger/internal/skinport"
	"github.com/skinledger/skinledger/internal/store"
)

// app is the wiring every report command needs.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
	store  *store.Store
}

func newApp(g *globalFlags, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadOptional(g.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	logger, err := logging.New(level, stderr)
	if err != nil {
		return nil, err
	}

	creds, err := keys.Load(g.envFile)
	if err != nil {
		return nil, fmt.Errorf("loading API keys: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.API.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.API.RequestsPerSecond), 1)
	}
	client := skinport.NewClient(creds, skinport.Config{
		BaseURL:     cfg.API.BaseURL,
		HTTPClient:  &http.Client{Timeout: cfg.API.Timeout},
		RateLimiter: limiter,
		Logger:      logger,
	})

	s := store.New(client, store.Options{
		Limit:  cfg.API.PageLimit,
		Order:  cfg.API.Order,
		Logger: logger,
	})
	return &app{cfg: cfg, logger: logger, store: s}, nil
}
