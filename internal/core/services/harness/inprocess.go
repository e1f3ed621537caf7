package harness

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/iamNilotpal/ipchecksum/internal/adapters/checksum"
	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/input"
)

const (
	DefaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 10 * time.Minute
)

// InProcessRunner computes checksums with the registered strategies directly,
// without spawning the binary. Each input is loaded once and then served from
// a cache while every strategy runs over it.
type InProcessRunner struct {
	registry *checksum.Registry
	loader   *input.Loader
	inputs   *cache.Cache
}

func NewInProcessRunner(registry *checksum.Registry, loader *input.Loader, expiration time.Duration) *InProcessRunner {
	if expiration <= 0 {
		expiration = DefaultCacheExpiration
	}
	return &InProcessRunner{
		registry: registry,
		loader:   loader,
		inputs:   cache.New(expiration, cacheCleanupInterval),
	}
}

func (r *InProcessRunner) Run(ctx context.Context, strategy domain.StrategyInfo, path string) (ports.Run, error) {
	s, err := r.registry.Get(strategy.Index)
	if err != nil {
		return ports.Run{}, err
	}

	data, err := r.load(ctx, path)
	if err != nil {
		return ports.Run{}, err
	}

	return ports.Run{Sum: s.Calculate(data)}, nil
}

func (r *InProcessRunner) load(ctx context.Context, path string) ([]byte, error) {
	if v, ok := r.inputs.Get(path); ok {
		return v.([]byte), nil
	}

	data, err := r.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	r.inputs.SetDefault(path, data)
	return data, nil
}

// Cached reports how many inputs are currently cached.
func (r *InProcessRunner) Cached() int {
	return r.inputs.ItemCount()
}
