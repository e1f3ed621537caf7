// Package input loads the bytes a checksum is computed over.
package input

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iamNilotpal/ipchecksum/internal/core/ports"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
	"github.com/iamNilotpal/ipchecksum/pkg/fs"
	"github.com/iamNilotpal/ipchecksum/pkg/logger"
	"github.com/iamNilotpal/ipchecksum/pkg/system"
)

// Loader reads whole input files into memory.
type Loader struct {
	fs         ports.FileSystemPort
	compressor ports.CompressionPort
	log        *zap.SugaredLogger
}

// Config holds the dependencies of a Loader. Zero fields get defaults:
// the local file system, no decompression and a no-op logger.
type Config struct {
	FS         ports.FileSystemPort
	Compressor ports.CompressionPort
	Logger     *zap.SugaredLogger
}

func NewLoader(config *Config) *Loader {
	if config == nil {
		config = &Config{}
	}

	l := Loader{
		fs:         config.FS,
		compressor: config.Compressor,
		log:        config.Logger,
	}

	if l.fs == nil {
		l.fs = fs.NewLocalFileSystem()
	}
	if l.log == nil {
		l.log = logger.NewNop()
	}

	return &l
}

// Load returns the contents of path. When a compressor is configured and the
// file starts with a compressed frame, the decoded bytes are returned.
//
// Errors are *errors.ChecksumError of category ErrorFileAccess or
// ErrorCompression, or the context's error.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	var data []byte

	err := system.RunWithContext(ctx, func(context.Context) error {
		var err error
		data, err = l.fs.ReadFile(path)
		return err
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, cerrors.NewFileAccessError("read", path, err)
	}

	if l.compressor == nil || !l.compressor.IsCompressed(data) {
		l.log.Debugw("input loaded", "path", path, "size", len(data))
		return data, nil
	}

	decoded, err := l.compressor.Decompress(data)
	if err != nil {
		return nil, cerrors.NewCompressionError("decompress", path, err)
	}

	l.log.Debugw("input decompressed", "path", path, "compressed", len(data), "size", len(decoded))
	return decoded, nil
}
