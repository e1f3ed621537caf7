package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/protocol"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
	"github.com/iamNilotpal/ipchecksum/pkg/pool"
)

// outputBufferSize comfortably holds the handful of lines the binary prints.
const outputBufferSize = 512

// ExecRunner runs the checksum binary once per (input, strategy) pair as
// "<binary> -s <index> <input>" and reads the "Hex:" value from its stdout.
type ExecRunner struct {
	binary  string
	timeout time.Duration
	env     []string
	buffers *pool.BufferPool
}

type ExecOptions struct {
	// Binary is the path of the checksum executable.
	Binary string

	// Timeout bounds a single run. Zero means no limit beyond the context.
	Timeout time.Duration

	// Env, when non-nil, replaces the child's environment.
	Env []string
}

func NewExecRunner(opts ExecOptions) (*ExecRunner, error) {
	if strings.TrimSpace(opts.Binary) == "" {
		return nil, cerrors.NewValidationError("binary", opts.Binary, errors.New("checksum binary is required"))
	}
	if opts.Timeout < 0 {
		return nil, cerrors.NewValidationError("timeout", opts.Timeout, errors.New("must not be negative"))
	}

	return &ExecRunner{
		binary:  opts.Binary,
		timeout: opts.Timeout,
		env:     opts.Env,
		buffers: pool.NewBufferPool(outputBufferSize),
	}, nil
}

// Args returns the command line used for strategy and path, binary first.
func (r *ExecRunner) Args(strategy domain.StrategyInfo, path string) []string {
	return []string{r.binary, "-s", strconv.Itoa(strategy.Index), path}
}

func (r *ExecRunner) Run(ctx context.Context, strategy domain.StrategyInfo, path string) (ports.Run, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := r.Args(strategy, path)
	run := ports.Run{Args: args}

	err := r.buffers.With(func(stdout *bytes.Buffer) error {
		var stderr bytes.Buffer

		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdout = stdout
		cmd.Stderr = &stderr
		if r.env != nil {
			cmd.Env = r.env
		}

		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				err = fmt.Errorf("%w: %s", err, msg)
			}
			return cerrors.NewExecError("run "+strings.Join(args, " "), path, err)
		}

		sum, err := protocol.ExtractHex(stdout.String())
		if err != nil {
			if ce := cerrors.AsChecksumError(err); ce != nil {
				ce.Path = path
			}
			return err
		}

		run.Sum = sum
		return nil
	})

	return run, err
}
