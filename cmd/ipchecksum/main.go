// Command ipchecksum prints the RFC 1071 Internet checksum of a file.
//
//	ipchecksum [-h] [-l] [-s strategy] [-config file] [-decompress] INPUT_FILE
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ipchecksum/config"
	"github.com/iamNilotpal/ipchecksum/internal/adapters/checksum"
	"github.com/iamNilotpal/ipchecksum/internal/adapters/compression"
	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/input"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/protocol"
	"github.com/iamNilotpal/ipchecksum/pkg/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	list       bool
	strategy   string
	label      string
	configFile string
	debug      bool
	decompress bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ipchecksum", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: ipchecksum [-h] [-l] [-s strategy] [-config file] INPUT_FILE\n\n")
		flags.PrintDefaults()
	}

	var opts options
	flags.BoolVar(&opts.list, "l", false, "List the available strategies and exit")
	flags.StringVar(&opts.strategy, "s", "0", "Strategy index or name")
	flags.StringVar(&opts.label, "label", "", "Label printed in front of the Hex line")
	flags.StringVar(&opts.configFile, "config", "", "YAML or TOML config file")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.decompress, "decompress", false, "Checksum the decoded contents of zstd inputs")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	conf := config.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if conf, err = config.LoadConfig(opts.configFile); err != nil {
			fmt.Fprintf(stderr, "ipchecksum: %v\n", err)
			return exitError
		}
	}

	// Flags given on the command line win over the config file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			conf.CLI.Strategy = opts.strategy
		case "debug":
			conf.Log.Debug = opts.debug
		case "decompress":
			conf.CLI.Decompress = opts.decompress
		}
	})

	log := logger.NewWithOptions("ipchecksum", logger.Options{
		Debug:    conf.Log.Debug,
		Level:    conf.Log.Level,
		Encoding: conf.Log.Encoding,
		Output:   stderr,
	})
	defer log.Sync()

	registry := checksum.DefaultRegistry()

	if opts.list {
		for _, s := range registry.Strategies() {
			fmt.Fprintf(stdout, "%d: %s - %s\n", s.Index, s.Name, s.Description)
		}
		return exitOK
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	path := flags.Arg(0)

	info, strategy, err := registry.Lookup(conf.CLI.Strategy)
	if err != nil {
		log.Errorw("invalid strategy", "strategy", conf.CLI.Strategy, "error", err)
		return exitUsage
	}

	loader, closeLoader, err := newLoader(&conf.CLI, log)
	if err != nil {
		log.Errorw("create input loader", "error", err)
		return exitError
	}
	defer closeLoader()

	result, err := calculate(ctx, loader, info, strategy, path)
	if err != nil {
		log.Errorw("checksum failed", "path", path, "strategy", info.Name, "error", err)
		return exitError
	}

	log.Debugw("checksum computed", "path", path, "strategy", info.Name, "size", result.Size, "elapsed", result.Elapsed)

	if err := protocol.WriteResult(stdout, opts.label, result); err != nil {
		log.Errorw("write result", "error", err)
		return exitError
	}
	return exitOK
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

	closeFn := func() {
		if err := zstd.Close(); err != nil {
			log.Warnw("close decompressor", "error", err)
		}
	}
	return input.NewLoader(&input.Config{Compressor: zstd, Logger: log}), closeFn, nil
}

// calculate times only the strategy itself, not the file read.
func calculate(
	ctx context.Context,
	loader *input.Loader,
	info domain.StrategyInfo,
	strategy ports.ChecksumPort,
	path string,
) (domain.ChecksumResult, error) {
	data, err := loader.Load(ctx, path)
	if err != nil {
		return domain.ChecksumResult{}, err
	}

	start := time.Now()
	sum := strategy.Calculate(data)

	return domain.ChecksumResult{
		Strategy: info.Name,
		Path:     path,
		Size:     len(data),
		Sum:      sum,
		Elapsed:  time.Since(start),
	}, nil
}
