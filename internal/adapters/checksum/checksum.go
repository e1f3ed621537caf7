package checksum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	"github.com/iamNilotpal/ipchecksum/internal/syncutil"
)

const (
	// EndAround folds the carry after every addition.
	EndAround domain.StrategyName = "end-around"

	// Linux sums 32-bit words and folds at the end.
	Linux domain.StrategyName = "linux"

	// Deferred sums 16-bit words into a 64-bit accumulator and folds once.
	Deferred domain.StrategyName = "deferred"

	// Unrolled handles 16 bytes per loop iteration.
	Unrolled domain.StrategyName = "unrolled"

	// GVisor uses gvisor.dev/gvisor/pkg/tcpip/checksum.
	GVisor domain.StrategyName = "gvisor"

	// Incremental streams the data through a Digest.
	Incremental domain.StrategyName = "incremental"
)

var (
	// ErrUnknownStrategy is returned when a name or index does not match
	// any registered strategy.
	ErrUnknownStrategy = errors.New("unknown checksum strategy")

	// ErrDuplicateStrategy is returned when registering a name twice.
	ErrDuplicateStrategy = errors.New("checksum strategy already registered")
)

// Registry is an ordered set of strategies. A strategy's position is its
// index on the command line, so strategies are never removed or reordered.
type Registry struct {
	mu         syncutil.RWMutex
	strategies []ports.ChecksumPort
	byName     map[string]int
}

// NewRegistry returns a registry holding the given strategies in order.
func NewRegistry(strategies ...ports.ChecksumPort) (*Registry, error) {
	r := &Registry{byName: make(map[string]int, len(strategies))}
	for _, s := range strategies {
		if _, err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a registry with every built-in strategy. Index 0
// is the end-around carry reference implementation.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		NewEndAround(),
		NewLinux(),
		NewDeferred(),
		NewUnrolled(),
		NewGVisor(),
		NewIncremental(0),
	)
	if err != nil {
		// Built-in names are distinct constants.
		panic(err)
	}
	return r
}

// Register appends s and returns its index.
func (r *Registry) Register(s ports.ChecksumPort) (int, error) {
	if s == nil {
		return -1, errors.New("nil checksum strategy")
	}

	name := strings.TrimSpace(s.Name())
	if name == "" {
		return -1, errors.New("checksum strategy has an empty name")
	}
	if _, err := strconv.Atoi(name); err == nil {
		return -1, fmt.Errorf("checksum strategy name %q must not be numeric", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return -1, fmt.Errorf("%w: %s", ErrDuplicateStrategy, name)
	}

	r.strategies = append(r.strategies, s)
	r.byName[name] = len(r.strategies) - 1
	return len(r.strategies) - 1, nil
}

// Get returns the strategy at index.
func (r *Registry) Get(index int) (ports.ChecksumPort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.strategies) {
		return nil, fmt.Errorf("%w: index %d (have %d)", ErrUnknownStrategy, index, len(r.strategies))
	}
	return r.strategies[index], nil
}

// Lookup resolves key, which is either a decimal index or a strategy name.
func (r *Registry) Lookup(key string) (domain.StrategyInfo, ports.ChecksumPort, error) {
	key = strings.TrimSpace(key)

	if idx, err := strconv.Atoi(key); err == nil {
		s, err := r.Get(idx)
		if err != nil {
			return domain.StrategyInfo{}, nil, err
		}
		return info(idx, s), s, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[key]
	if !ok {
		return domain.StrategyInfo{}, nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	s := r.strategies[idx]
	return info(idx, s), s, nil
}

// Strategies lists the registered strategies in index order.
func (r *Registry) Strategies() []domain.StrategyInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.StrategyInfo, len(r.strategies))
	for i, s := range r.strategies {
		out[i] = info(i, s)
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strategies)
}

// Validate checks that every key resolves to a registered strategy.
func (r *Registry) Validate(keys ...string) error {
	for _, k := range keys {
		if _, _, err := r.Lookup(k); err != nil {
			return err
		}
	}
	return nil
}

func info(idx int, s ports.ChecksumPort) domain.StrategyInfo {
	return domain.StrategyInfo{
		Index:       idx,
		Name:        domain.StrategyName(s.Name()),
		Description: s.Description(),
	}
}
