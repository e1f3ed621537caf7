package checksum

import (
	rfc1071 "github.com/iamNilotpal/ipchecksum/pkg/checksum"
)

type deferred struct {
	name string
}

// NewDeferred accumulates every word into a 64-bit sum and folds the
// carries once at the end. A 64-bit accumulator cannot overflow before
// 2^48 words have been added.
func NewDeferred() *deferred {
	return &deferred{name: string(Deferred)}
}

func (d *deferred) Calculate(data []byte) uint16 {
	var sum uint64

	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		sum += uint64(data[i])<<8 | uint64(data[i+1])
	}

	if len(data)%2 == 1 {
		sum += uint64(data[len(data)-1]) << 8
	}

	return ^rfc1071.Fold(sum)
}

func (d *deferred) Verify(data []byte, expected uint16) bool {
	return d.Calculate(data) == expected
}

func (d *deferred) Name() string {
	return d.name
}

func (d *deferred) Description() string {
	return "Deferred carries"
}
