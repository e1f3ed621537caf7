package checksum

import (
	rfc1071 "github.com/iamNilotpal/ipchecksum/pkg/checksum"
)

type endAround struct {
	name string
}

// NewEndAround folds the carry back after every 16-bit addition.
func NewEndAround() *endAround {
	return &endAround{name: string(EndAround)}
}

func (e *endAround) Calculate(data []byte) uint16 {
	return rfc1071.Checksum(data)
}

func (e *endAround) Verify(data []byte, expected uint16) bool {
	return e.Calculate(data) == expected
}

func (e *endAround) Name() string {
	return e.name
}

func (e *endAround) Description() string {
	return "End around carries."
}
