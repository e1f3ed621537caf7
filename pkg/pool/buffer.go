package pool

import (
	"bytes"
	"sync"
)

// BufferPool recycles the buffers that capture checksum binary output.
type BufferPool struct {
	size int       // Initial capacity of new buffers.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool whose buffers start with size bytes of capacity.
func NewBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		return bytes.NewBuffer(make([]byte, 0, bp.size))
	}
	return bp
}

// Retrieves an empty buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Returns a buffer to the pool. Buffers that grew beyond twice the pool
// size are dropped so one large output does not pin memory.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > bp.size*2 {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}

// With lends a buffer to fn and returns it to the pool afterwards. The
// buffer must not be retained by fn.
func (bp *BufferPool) With(fn func(buf *bytes.Buffer) error) error {
	buf := bp.Get()
	defer bp.Put(buf)
	return fn(buf)
}
