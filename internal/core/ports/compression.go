package ports

// Defines the interface for compression operations.
// The input loader only decompresses; Compress is used to produce fixtures.
type CompressionPort interface {
	// Compress reduces data size.
	// Returns compressed data and any error that occurred.
	Compress(data []byte) ([]byte, error)

	// Decompress restores original data.
	// Returns decompressed data and any error that occurred.
	Decompress(data []byte) ([]byte, error)

	// IsCompressed reports whether data starts with a frame this port understands.
	IsCompressed(data []byte) bool

	// Close cleans up compression resources.
	Close() error
}
