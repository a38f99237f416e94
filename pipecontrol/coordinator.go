// Package pipecontrol decides how to split requested cache flush and
// invalidate operations into hardware synchronization commands that are safe
// to issue atomically.
//
// The hardware's synchronization command is a swiss army knife: it can flush
// write caches, invalidate read caches, stall the pipeline, and write to
// memory, but not every combination is safe in a single command. The
// coordinator owns the policy side of this: callers ask for a logical set of
// operations and the coordinator issues one or two resolved commands through
// an injected RawEmitter, which handles per-generation encoding.
package pipecontrol

import "github.com/thebigbrain/mesa/hw"

// A Coordinator resolves logical flush/invalidate requests into commands
// that never mix write-cache flushing with read-cache invalidation.
type Coordinator struct {
	emitter RawEmitter
	scratch *hw.Buffer
}

// RequestFlush issues the requested cache operations on the batch.
//
// A single command carrying both flush and invalidate bits is racy when the
// flushed contents must become visible to the invalidated caches: the
// invalidation can complete before the flushed writes reach memory. When the
// request mixes the two groups, the flush subset is issued first as an
// end-of-pipe sync, which fully drains the pipeline and performs a trackable
// write, and the invalidate subset follows in a second command. The split is
// performed on every generation; it is redundant on hardware that orders the
// two internally, but never incorrect.
func (c *Coordinator) RequestFlush(b *hw.Batch, flags Flags) {
	if flags.Intersects(CacheFlushBits) && flags.Intersects(CacheInvalidateBits) {
		c.EndOfPipeSync(b, flags&CacheFlushBits)
		flags = flags.Without(CacheFlushBits | CSStall)
	}

	c.emitter.EmitRaw(b, Request{Flags: flags})
}

// RequestWrite issues a synchronization command that writes to a buffer.
// Flags should carry exactly one of WriteImmediate, WriteTimestamp, or
// WriteDepthCount.
func (c *Coordinator) RequestWrite(
	b *hw.Batch,
	flags Flags,
	target *hw.Buffer,
	offset uint32,
	imm uint64,
) {
	c.emitter.EmitRaw(b, Request{
		Flags:  flags,
		Target: target,
		Offset: offset,
		Imm:    imm,
	})
}

// EndOfPipeSync issues the requested flush operations with a full pipeline
// stall and an immediate-value write to the device scratch buffer.
//
// Flushing write caches alone does not guarantee the data is globally
// visible; the pipeline must drain and perform a post-sync write before
// dependent work can safely read the flushed data. The written value is
// never inspected, so 0 suffices.
func (c *Coordinator) EndOfPipeSync(b *hw.Batch, flags Flags) {
	c.RequestWrite(b, flags|CSStall|WriteImmediate, c.scratch, 0, 0)
}
