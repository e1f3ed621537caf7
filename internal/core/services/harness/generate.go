package harness

import (
	"context"
	"path/filepath"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
)

// Generate computes an expectation for every regular file in inputDir with
// the given runner and strategy, in file name order. The result is written
// with protocol.WriteExpected to seed an expected-output file.
func Generate(
	ctx context.Context,
	fs ports.FileSystemPort,
	runner ports.RunnerPort,
	strategy domain.StrategyInfo,
	inputDir string,
) ([]domain.Expectation, error) {
	names, err := fs.ReadDir(inputDir)
	if err != nil {
		return nil, cerrors.NewFileAccessError("read dir", inputDir, err)
	}

	out := make([]domain.Expectation, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		run, err := runner.Run(ctx, strategy, filepath.Join(inputDir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Expectation{File: name, Sum: run.Sum, Line: i + 1})
	}

	return out, nil
}
