package ports

// Defines an interface for calculating and verifying RFC 1071 checksums.
// Every implementation must return the same value for the same input; they
// differ only in how the sum is accumulated.
type ChecksumPort interface {
	// Calculates the 16-bit Internet checksum of data.
	Calculate(data []byte) uint16

	// Returns true if the checksum of data equals expected.
	Verify(data []byte, expected uint16) bool

	// Short identifier used on the command line.
	Name() string

	// Human readable summary shown by the strategy listing.
	Description() string
}
