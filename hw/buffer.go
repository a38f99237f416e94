package hw

import (
	"sync/atomic"

	"github.com/rs/xid"
)

// bufferAlignment is the granularity of the fake GPU address space. Buffers
// never overlap and never start at address 0.
const bufferAlignment = 0x1000

var nextBufferAddr uint64 = bufferAlignment

// A Buffer is an opaque handle to a region of GPU-addressable memory. The
// synchronization layer never reads or writes buffer contents directly; it
// only hands buffers to the hardware as post-sync write destinations and
// tracks them in cache trackers.
type Buffer struct {
	id   string
	name string
	addr uint64
	size uint64
}

// NewBuffer creates a buffer with the given debug name and size, placing it
// at a unique GPU address.
func NewBuffer(name string, size uint64) *Buffer {
	aligned := (size + bufferAlignment - 1) &^ uint64(bufferAlignment-1)
	addr := atomic.AddUint64(&nextBufferAddr, aligned) - aligned

	return &Buffer{
		id:   xid.New().String(),
		name: name,
		addr: addr,
		size: size,
	}
}

// ID returns the globally unique ID of the buffer.
func (b *Buffer) ID() string {
	return b.id
}

// Name returns the debug name of the buffer.
func (b *Buffer) Name() string {
	return b.name
}

// GPUAddress returns the base address of the buffer in the GPU address
// space.
func (b *Buffer) GPUAddress() uint64 {
	return b.addr
}

// Size returns the size of the buffer in bytes.
func (b *Buffer) Size() uint64 {
	return b.size
}
