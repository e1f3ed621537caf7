package checksum

// Digest computes the Internet checksum incrementally. The zero value is
// ready to use. Writes may be split at any byte, including in the middle of
// a 16-bit word; the result equals Checksum over the concatenated input.
type Digest struct {
	sum uint64
	odd bool // A high byte is pending and the next byte is a low byte.
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{}
}

// Write adds p to the running sum. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}

	if d.odd {
		d.sum += uint64(p[0])
		d.odd = false
		p = p[1:]
	}

	even := len(p) &^ 1
	for i := 0; i < even; i += 2 {
		d.sum += uint64(p[i])<<8 | uint64(p[i+1])
	}

	if len(p)%2 == 1 {
		d.sum += uint64(p[len(p)-1]) << 8
		d.odd = true
	}

	// Keep headroom so arbitrarily long streams cannot overflow.
	if d.sum > 1<<48 {
		d.sum = uint64(Fold(d.sum))
	}

	return n, nil
}

// Sum16 returns the checksum of everything written so far.
func (d *Digest) Sum16() uint16 {
	return ^Fold(d.sum)
}

// Sum appends the big-endian checksum to b.
func (d *Digest) Sum(b []byte) []byte {
	s := d.Sum16()
	return append(b, byte(s>>8), byte(s))
}

// Reset clears the digest.
func (d *Digest) Reset() {
	d.sum = 0
	d.odd = false
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 2 }
