// Package source acquires index records either from a local JSON file or from
// an Elasticsearch cluster's cat API.
package source

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dm/idxreport/internal/client"
	"github.com/dm/idxreport/internal/config"
	"github.com/dm/idxreport/internal/model"
)

var errEmptyEndpoint = errors.New("endpoint is not configured (use --endpoint or --debug)")

// Options carries the collaborators Acquire needs beyond the config.
// Zero values select the defaults.
type Options struct {
	Logger *zap.Logger
	Now    func() time.Time
	// NewClient overrides client construction, mainly for tests.
	NewClient func(client.ClientConfig) (client.ESClient, error)
}

// Acquire produces the index records for cfg: the data file when cfg.Debug is
// set, the configured endpoint otherwise. Every failure is an *AcquisitionError.
func Acquire(ctx context.Context, cfg config.Config, opts Options) ([]model.Index, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if cfg.Debug {
		path := cfg.DataFile
		if path == "" {
			path = DefaultDataFile
		}
		log.Info("reading index data from file", zap.String("path", path))
		return LoadFile(path, log)
	}

	if cfg.Endpoint == "" {
		return nil, newError(NetworkError, OriginServer, "", errEmptyEndpoint)
	}
	baseURL, username, password, err := client.ParseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, newError(NetworkError, OriginServer, "", err)
	}

	newClient := opts.NewClient
	if newClient == nil {
		newClient = func(cc client.ClientConfig) (client.ESClient, error) {
			return client.NewDefaultClient(cc)
		}
	}
	c, err := newClient(client.ClientConfig{
		BaseURL:            baseURL,
		Username:           username,
		Password:           password,
		InsecureSkipVerify: cfg.Insecure,
		RequestTimeout:     cfg.Timeout,
		Logger:             log,
	})
	if err != nil {
		return nil, newError(NetworkError, OriginServer, baseURL, err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	log.Info("reading index data from endpoint", zap.String("endpoint", baseURL), zap.Int("days", cfg.Days))
	return FetchServer(ctx, c, cfg.Days, now(), log)
}
