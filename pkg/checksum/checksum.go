// Package checksum implements the Internet checksum described in RFC 1071.
//
// The checksum is the one's complement of the one's complement sum of the
// data taken as a sequence of big-endian 16-bit words. When the data has an
// odd length the final byte is the high byte of a word whose low byte is zero.
package checksum

import "encoding/binary"

// Size is the size of a checksum in bytes.
const Size = 2

// Checksum returns the Internet checksum of data. An empty slice yields 0xFFFF.
func Checksum(data []byte) uint16 {
	var sum uint32

	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
		sum = (sum & 0xFFFF) + (sum >> 16)
	}

	// Odd tail occupies the high byte.
	if len(data)%2 == 1 {
		sum += uint32(data[len(data)-1]) << 8
		sum = (sum & 0xFFFF) + (sum >> 16)
	}

	return ^uint16(sum)
}

// Verify reports whether sum is the checksum of data.
func Verify(data []byte, sum uint16) bool {
	return Checksum(data) == sum
}

// Put writes sum into b[0:2] in network byte order.
func Put(b []byte, sum uint16) {
	binary.BigEndian.PutUint16(b, sum)
}

// Append returns data followed by its checksum. Odd-length data is padded with
// a zero byte first so the checksum lands on a word boundary, which makes the
// checksum of the result zero.
func Append(data []byte) []byte {
	out := make([]byte, len(data), len(data)+1+Size)
	copy(out, data)

	if len(out)%2 == 1 {
		out = append(out, 0)
	}

	sum := Checksum(out)
	return binary.BigEndian.AppendUint16(out, sum)
}

// Fold reduces a wide one's complement accumulator to 16 bits with
// end-around carries. The result is not complemented.
func Fold(sum uint64) uint16 {
	for sum > 0xFFFF {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return uint16(sum)
}
