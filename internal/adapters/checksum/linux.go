package checksum

import (
	"encoding/binary"

	rfc1071 "github.com/iamNilotpal/ipchecksum/pkg/checksum"
)

type linux struct {
	name string
}

// NewLinux sums 32-bit words into a 64-bit accumulator the way the kernel's
// generic do_csum does, handling the 16-bit and 8-bit tails separately.
// Since 2^16 = 1 modulo 2^16-1, a 32-bit word contributes the same as its
// two 16-bit halves once the sum is folded.
func NewLinux() *linux {
	return &linux{name: string(Linux)}
}

func (l *linux) Calculate(data []byte) uint16 {
	var sum uint64

	for len(data) >= 4 {
		sum += uint64(binary.BigEndian.Uint32(data))
		data = data[4:]
	}

	if len(data) >= 2 {
		sum += uint64(binary.BigEndian.Uint16(data))
		data = data[2:]
	}

	if len(data) == 1 {
		sum += uint64(data[0]) << 8
	}

	return ^rfc1071.Fold(sum)
}

func (l *linux) Verify(data []byte, expected uint16) bool {
	return l.Calculate(data) == expected
}

func (l *linux) Name() string {
	return l.name
}

func (l *linux) Description() string {
	return `Linux kernel's "lib/checksum.c" implementation.`
}
