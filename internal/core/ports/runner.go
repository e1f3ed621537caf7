package ports

import (
	"context"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
)

// RunnerPort computes the checksum of one input file with one strategy.
// The harness treats every returned error as fatal.
type RunnerPort interface {
	Run(ctx context.Context, strategy domain.StrategyInfo, path string) (Run, error)
}

// Run is what a runner observed. Args is empty for in-process runs.
type Run struct {
	Sum  uint16
	Args []string
}
