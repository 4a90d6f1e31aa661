// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// BytePool is a sync.Pool-backed cache of fixed-size byte slices, letting a
// hot loop reuse one scratch buffer across calls instead of allocating
// fresh on every call.
type BytePool struct {
	size int
	pool sync.Pool
}

// NewBytePool returns a BytePool whose buffers are all exactly size bytes.
func NewBytePool(size int) *BytePool {
	b := &BytePool{size: size}
	b.pool.New = func() interface{} {
		return make([]byte, size)
	}
	return b
}

// GetBuffer returns a buffer of size bytes, reused from the pool when one
// is available.
func (b *BytePool) GetBuffer() []byte {
	return b.pool.Get().([]byte)
}

// PutBuffer returns buf to the pool for reuse. A buffer shorter than size
// (e.g. one that was never obtained from this pool) is dropped rather than
// risking a short buffer being handed back out by a later GetBuffer.
func (b *BytePool) PutBuffer(buf []byte) {
	if cap(buf) < b.size {
		return
	}
	b.pool.Put(buf[:b.size])
}
