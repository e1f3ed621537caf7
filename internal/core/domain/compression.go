package domain

// CompressionOptions configures transparent decompression of input files.
// Inputs that start with a zstd frame header are decompressed before the
// checksum is computed; all other inputs are used as-is.
type CompressionOptions struct {
	// Enable toggles detection and decompression of zstd inputs.
	//
	// Default: true
	Enable bool

	// DecoderConcurrency specifies the number of concurrent decompression operations.
	// Must not exceed the number of CPU cores. Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8

	// MaxDecodedSize caps the size of a decompressed input in bytes so a
	// hostile frame cannot exhaust memory. Zero means the default of 1GB.
	MaxDecodedSize uint64
}
