// Package compression provides zstd support for checksum inputs.
// Test corpora are often stored compressed; the loader uses this package to
// recognise zstd frames and checksum the decoded bytes instead.
package compression

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the little-endian frame magic number 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

type Options struct {
	DecoderConcurrency uint8
	MaxDecodedSize     uint64
}

// ZstdCompression implements CompressionPort using the zstd compression algorithm.
// Encoder and decoder are created once and shared; both are safe for
// concurrent EncodeAll/DecodeAll calls.
type ZstdCompression struct {
	mu      sync.RWMutex  // Guards against use after Close.
	closed  bool          // Set by Close.
	decoder *zstd.Decoder // Thread-safe decoder instance for decompression
	encoder *zstd.Encoder // Thread-safe encoder instance for compression
}

// NewZstdCompression creates a zstd instance with a bounded decoder.
//
// Returns an error if:
// - The options are invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts Options) (*ZstdCompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Enable:             true,
			DecoderConcurrency: opts.DecoderConcurrency,
			MaxDecodedSize:     opts.MaxDecodedSize,
		},
	); err != nil {
		return nil, err
	}

	maxSize := opts.MaxDecodedSize
	if maxSize == 0 {
		maxSize = DefaultMaxDecodedSize
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithZeroFrames(true), // Empty input still yields a recognisable frame.
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)),
		zstd.WithDecoderMaxMemory(maxSize),
	)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// Compress encodes data as a single zstd frame. Unlike a storage codec it
// never returns the input unchanged, so that IsCompressed holds for the output.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return nil, ErrClosed
	}
	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress restores the original data from its compressed form.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - The decoded size exceeds the configured maximum
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return nil, ErrClosed
	}

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// IsCompressed reports whether data begins with the zstd frame magic.
func (z *ZstdCompression) IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Close releases all resources used by the compression instance.
// After closing, the instance cannot be used for compression or decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closed {
		return nil
	}
	z.closed = true

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
