package checksum

import (
	"os"

	rfc1071 "github.com/iamNilotpal/ipchecksum/pkg/checksum"
)

type incremental struct {
	name      string
	chunkSize int
}

// NewIncremental feeds the data through a Digest in chunks of four pages,
// the read size used when streaming a file. An odd chunk size exercises the
// digest's split-word handling; chunkSize <= 0 selects the default.
func NewIncremental(chunkSize int) *incremental {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize()
	}
	return &incremental{name: string(Incremental), chunkSize: chunkSize}
}

// DefaultChunkSize is four times the host page size.
func DefaultChunkSize() int {
	return os.Getpagesize() * 4
}

func (c *incremental) Calculate(data []byte) uint16 {
	d := rfc1071.NewDigest()
	for len(data) > 0 {
		n := min(c.chunkSize, len(data))
		_, _ = d.Write(data[:n])
		data = data[n:]
	}
	return d.Sum16()
}

func (c *incremental) Verify(data []byte, expected uint16) bool {
	return c.Calculate(data) == expected
}

func (c *incremental) Name() string {
	return c.name
}

func (c *incremental) Description() string {
	return "Incremental digest over page-sized chunks"
}
