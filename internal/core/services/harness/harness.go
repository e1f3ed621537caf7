// Package harness checks that every checksum strategy prints the expected
// value for every input listed in an expected-output file.
package harness

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
	"github.com/iamNilotpal/ipchecksum/pkg/logger"
)

// Harness runs each expectation against each strategy.
type Harness struct {
	runner      ports.RunnerPort
	strategies  []domain.StrategyInfo
	inputDir    string
	parallelism int
	log         *zap.SugaredLogger
}

type Config struct {
	// Runner computes one checksum. Required.
	Runner ports.RunnerPort

	// Strategies to test, usually the whole registry. Required.
	Strategies []domain.StrategyInfo

	// InputDir is joined with each expectation's file name.
	InputDir string

	// Parallelism bounds concurrent runs. Defaults to the number of CPUs.
	Parallelism int

	Logger *zap.SugaredLogger
}

func New(config *Config) (*Harness, error) {
	if config == nil || config.Runner == nil {
		return nil, cerrors.NewValidationError("runner", nil, errors.New("runner is required"))
	}
	if len(config.Strategies) == 0 {
		return nil, cerrors.NewValidationError("strategies", config.Strategies, errors.New("at least one strategy is required"))
	}
	if config.Parallelism < 0 {
		return nil, cerrors.NewValidationError("parallelism", config.Parallelism, errors.New("must not be negative"))
	}

	h := Harness{
		runner:      config.Runner,
		strategies:  config.Strategies,
		inputDir:    config.InputDir,
		parallelism: config.Parallelism,
		log:         config.Logger,
	}

	if h.parallelism == 0 {
		h.parallelism = runtime.NumCPU()
	}
	if h.log == nil {
		h.log = logger.NewNop()
	}

	return &h, nil
}

// Run tests every expectation with every strategy.
//
// A failure to run a strategy (unreadable input, binary error, missing "Hex:"
// value) stops the whole run and is returned with a nil report. Otherwise the
// report lists every outcome in expectation order then strategy order, and
// the error combines one mismatch error per failed outcome; it is nil when
// everything passed.
func (h *Harness) Run(ctx context.Context, expectations []domain.Expectation) (*domain.Report, error) {
	outcomes := make([]domain.Outcome, len(expectations)*len(h.strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)

	for i, exp := range expectations {
		exp := exp
		path := filepath.Join(h.inputDir, exp.File)

		for j, strategy := range h.strategies {
			strategy := strategy
			slot := i*len(h.strategies) + j

			g.Go(func() error {
				run, err := h.runner.Run(gctx, strategy, path)
				if err != nil {
					h.log.Errorw("strategy run failed", "file", exp.File, "strategy", strategy.Name, "error", err)
					return err
				}

				outcomes[slot] = domain.Outcome{
					File:     exp.File,
					Strategy: strategy.Name,
					Index:    strategy.Index,
					Args:     run.Args,
					Expected: exp.Sum,
					Actual:   run.Sum,
					Passed:   run.Sum == exp.Sum,
				}

				h.log.Debugw(
					"strategy run", "file", exp.File, "strategy", strategy.Name,
					"expected", exp.Sum, "actual", run.Sum,
				)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := domain.Report{Outcomes: outcomes}
	var mismatches error

	for _, o := range outcomes {
		if o.Passed {
			report.Passed++
			continue
		}
		report.Failed++
		mismatches = multierr.Append(
			mismatches, cerrors.NewMismatchError(o.File, string(o.Strategy), o.Expected, o.Actual),
		)
	}

	h.log.Infow("harness finished", "passed", report.Passed, "failed", report.Failed)
	return &report, mismatches
}
