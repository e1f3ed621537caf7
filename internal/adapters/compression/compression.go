package compression

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
)

// DefaultMaxDecodedSize bounds a decompressed input at 1GB.
const DefaultMaxDecodedSize uint64 = 1 << 30

// ErrClosed is returned when the codec is used after Close.
var ErrClosed = errors.New("compression codec is closed")

// Returns CompressionOptions with decompression enabled and one decoder
// goroutine per CPU.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		DecoderConcurrency: uint8(min(runtime.NumCPU(), 255)),
		MaxDecodedSize:     DefaultMaxDecodedSize,
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	if input == nil || !input.Enable {
		return nil
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}
