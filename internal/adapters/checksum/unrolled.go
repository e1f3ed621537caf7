package checksum

import (
	rfc1071 "github.com/iamNilotpal/ipchecksum/pkg/checksum"
)

type unrolled struct {
	name string
}

// NewUnrolled processes 16 bytes per iteration with a 32-bit accumulator
// that is folded whenever it gets close to overflowing.
func NewUnrolled() *unrolled {
	return &unrolled{name: string(Unrolled)}
}

func (u *unrolled) Calculate(data []byte) uint16 {
	var sum uint32
	length := len(data)
	i := 0

	for i+15 < length {
		w0 := uint32(data[i])<<8 | uint32(data[i+1])
		w1 := uint32(data[i+2])<<8 | uint32(data[i+3])
		w2 := uint32(data[i+4])<<8 | uint32(data[i+5])
		w3 := uint32(data[i+6])<<8 | uint32(data[i+7])
		w4 := uint32(data[i+8])<<8 | uint32(data[i+9])
		w5 := uint32(data[i+10])<<8 | uint32(data[i+11])
		w6 := uint32(data[i+12])<<8 | uint32(data[i+13])
		w7 := uint32(data[i+14])<<8 | uint32(data[i+15])

		sum += w0 + w1 + w2 + w3 + w4 + w5 + w6 + w7
		i += 16

		// Eight words add at most 0x7FFF8.
		if sum > 0xFFFFFFFF-0x80000 {
			sum = (sum & 0xFFFF) + (sum >> 16)
		}
	}

	for i+1 < length {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
		i += 2
	}

	if i < length {
		sum += uint32(data[i]) << 8
	}

	return ^rfc1071.Fold(uint64(sum))
}

func (u *unrolled) Verify(data []byte, expected uint16) bool {
	return u.Calculate(data) == expected
}

func (u *unrolled) Name() string {
	return u.name
}

func (u *unrolled) Description() string {
	return "Unrolled 16-byte loop with periodic carry folding"
}
