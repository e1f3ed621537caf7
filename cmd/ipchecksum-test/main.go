// Command ipchecksum-test runs every checksum strategy over every input listed
// in an expected-output file and reports which results differ.
//
//	ipchecksum-test [-config file] [-binary path] [-input dir] [-expected file]
//	                [-inprocess] [-json] [-generate]
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ipchecksum/config"
	"github.com/iamNilotpal/ipchecksum/internal/adapters/checksum"
	"github.com/iamNilotpal/ipchecksum/internal/adapters/compression"
	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/harness"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/input"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/protocol"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
	"github.com/iamNilotpal/ipchecksum/pkg/fs"
	"github.com/iamNilotpal/ipchecksum/pkg/logger"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configFile string
	binary     string
	inputDir   string
	expected   string
	strategies string
	parallel   int
	timeout    time.Duration
	inProcess  bool
	json       bool
	color      bool
	generate   bool
	decompress bool
	debug      bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ipchecksum-test", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVar(&opts.configFile, "config", "", "YAML or TOML config file")
	flags.StringVar(&opts.binary, "binary", "", "Checksum binary to test (default ./IPchecksum)")
	flags.StringVar(&opts.inputDir, "input", "", "Directory holding the input files (default input)")
	flags.StringVar(&opts.expected, "expected", "", "Expected-output file (default expected_out.txt)")
	flags.StringVar(&opts.strategies, "s", "", "Comma separated strategies to test (default all)")
	flags.IntVar(&opts.parallel, "parallel", 0, "Concurrent runs (default number of CPUs)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Timeout of a single run")
	flags.BoolVar(&opts.inProcess, "inprocess", false, "Run the strategies in this process instead of the binary")
	flags.BoolVar(&opts.json, "json", false, "Print the report as JSON")
	flags.BoolVar(&opts.color, "color", true, "Color PASSED and FAILED lines")
	flags.BoolVar(&opts.generate, "generate", false, "Write the expected-output file from strategy 0 and exit")
	flags.BoolVar(&opts.decompress, "decompress", false, "Checksum the decoded contents of zstd inputs in process")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return exitUsage
	}

	conf := config.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if conf, err = config.LoadConfig(opts.configFile); err != nil {
			fmt.Fprintf(stderr, "ipchecksum-test: %v\n", err)
			return exitFailed
		}
	}
	applyFlags(flags, &opts, conf)

	log := logger.NewWithOptions("ipchecksum-test", logger.Options{
		Debug:    conf.Log.Debug,
		Level:    conf.Log.Level,
		Encoding: conf.Log.Encoding,
		Output:   stderr,
	})
	defer log.Sync()

	if err := conf.Validate(); err != nil {
		log.Errorw("invalid configuration", "error", err)
		return exitUsage
	}

	registry := checksum.DefaultRegistry()
	strategies, err := selectStrategies(registry, conf.Harness.Strategies)
	if err != nil {
		log.Errorw("invalid strategies", "strategies", conf.Harness.Strategies, "error", err)
		return exitUsage
	}

	loader, closeLoader, err := newLoader(&conf.CLI, log)
	if err != nil {
		log.Errorw("create input loader", "error", err)
		return exitFailed
	}
	defer closeLoader()

	local := fs.NewLocalFileSystem()

	if opts.generate {
		if err := generate(ctx, local, registry, loader, &conf.Harness); err != nil {
			log.Errorw("generate expected output", "error", err)
			return exitFailed
		}
		log.Infow("expected output written", "path", conf.Harness.ExpectedPath)
		return exitOK
	}

	expectations, err := readExpected(local, conf.Harness.ExpectedPath)
	if err != nil {
		log.Errorw("read expected output", "path", conf.Harness.ExpectedPath, "error", err)
		return exitFailed
	}

	var runner ports.RunnerPort
	if conf.Harness.InProcess {
		runner = harness.NewInProcessRunner(registry, loader, conf.Harness.CacheExpiration)
	} else {
		runner, err = harness.NewExecRunner(harness.ExecOptions{
			Binary:  conf.Harness.Binary,
			Timeout: conf.Harness.Timeout,
		})
		if err != nil {
			log.Errorw("create runner", "error", err)
			return exitUsage
		}
	}

	h, err := harness.New(&harness.Config{
		Runner:      runner,
		Strategies:  strategies,
		InputDir:    conf.Harness.InputDir,
		Parallelism: conf.Harness.Parallelism,
		Logger:      log,
	})
	if err != nil {
		log.Errorw("create harness", "error", err)
		return exitUsage
	}

	report, err := h.Run(ctx, expectations)
	if report == nil {
		log.Errorw("harness aborted", "error", err)
		return exitFailed
	}
	if err != nil {
		log.Warnw("mismatches", "count", report.Failed, "error", err)
	}

	if conf.Harness.JSON {
		err = harness.WriteJSON(stdout, report)
	} else {
		err = harness.WriteText(stdout, report, conf.Harness.Color)
	}
	if err != nil {
		log.Errorw("write report", "error", err)
		return exitFailed
	}

	if !report.OK() {
		return exitFailed
	}
	return exitOK
}

// applyFlags copies the flags given on the command line over conf.
func applyFlags(flags *flag.FlagSet, opts *options, conf *config.Config) {
	h := &conf.Harness
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "binary":
			h.Binary = opts.binary
		case "input":
			h.InputDir = opts.inputDir
		case "expected":
			h.ExpectedPath = opts.expected
		case "s":
			h.Strategies = splitList(opts.strategies)
		case "parallel":
			h.Parallelism = opts.parallel
		case "timeout":
			h.Timeout = opts.timeout
		case "inprocess":
			h.InProcess = opts.inProcess
		case "json":
			h.JSON = opts.json
		case "color":
			h.Color = opts.color
		case "decompress":
			conf.CLI.Decompress = opts.decompress
		case "debug":
			conf.Log.Debug = opts.debug
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func selectStrategies(registry *checksum.Registry, keys []string) ([]domain.StrategyInfo, error) {
	if len(keys) == 0 {
		return registry.Strategies(), nil
	}
	if err := registry.Validate(keys...); err != nil {
		return nil, err
	}

	out := make([]domain.StrategyInfo, 0, len(keys))
	for _, key := range keys {
		info, _, err := registry.Lookup(key)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func readExpected(local *fs.LocalFileSystem, path string) ([]domain.Expectation, error) {
	f, err := local.Open(path)
	if err != nil {
		return nil, cerrors.NewFileAccessError("open", path, err)
	}
	defer f.Close()

	return protocol.ParseExpected(f, path)
}

// generate seeds the expected-output file with the end-around strategy,
// computed in process.
func generate(
	ctx context.Context,
	local *fs.LocalFileSystem,
	registry *checksum.Registry,
	loader *input.Loader,
	conf *config.HarnessConfig,
) error {
	reference, _, err := registry.Lookup("0")
	if err != nil {
		return err
	}

	runner := harness.NewInProcessRunner(registry, loader, conf.CacheExpiration)
	expectations, err := harness.Generate(ctx, local, runner, reference, conf.InputDir)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := protocol.WriteExpected(&buf, expectations); err != nil {
		return err
	}
	if err := local.WriteFile(conf.ExpectedPath, 0644, buf.Bytes()); err != nil {
		return cerrors.NewFileAccessError("write", conf.ExpectedPath, err)
	}
	return nil
}

func newLoader(conf *config.CLIConfig, log *zap.SugaredLogger) (*input.Loader, func(), error) {
	opts := conf.Compression()
	if !opts.Enable {
		return input.NewLoader(&input.Config{Logger: log}), func() {}, nil
	}

	if err := compression.Validate(opts); err != nil {
		return nil, nil, err
	}

	zstd, err := compression.NewZstdCompression(compression.Options{
		DecoderConcurrency: opts.DecoderConcurrency,
		MaxDecodedSize:     opts.MaxDecodedSize,
	})
	if err != nil {
		return nil, nil, err
	}

	return input.NewLoader(&input.Config{Compressor: zstd, Logger: log}), func() { _ = zstd.Close() }, nil
}
