// Package barrier turns abstract barrier requests into concrete cache
// operations, dispatched per execution batch based on what each batch has
// actually done.
package barrier

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// A Policy implements the texture and memory barriers for one device. It
// inspects each batch's transient state to decide which batches need
// synchronization commands at all, and never mutates that state itself.
type Policy struct {
	device *hw.Device
	coord  *pipecontrol.Coordinator
}

// TextureBarrier makes all prior rendering visible to subsequent texture
// reads.
//
// The render batch qualifies if it has draw history or its render or depth
// cache tracks any entries. The flush and the texture invalidate go through
// the coordinator as two separate requests: the invalidate must only start
// once the flush has fully resolved, so combining them would reintroduce the
// race the coordinator exists to prevent. The compute batch has no render or
// depth cache; it only needs a stall and the invalidate, and only if it has
// dispatch history. Idle batches emit nothing.
func (p *Policy) TextureBarrier() {
	render := p.device.RenderBatch()
	if render.ContainsDraw() ||
		render.RenderCache().TrackedEntryCount() > 0 ||
		render.DepthCache().TrackedEntryCount() > 0 {
		p.coord.RequestFlush(render,
			pipecontrol.DepthCacheFlush|
				pipecontrol.RenderTargetFlush|
				pipecontrol.CSStall)
		p.coord.RequestFlush(render, pipecontrol.TextureCacheInvalidate)
	}

	compute := p.device.ComputeBatch()
	if compute.ContainsDraw() {
		p.coord.RequestFlush(compute, pipecontrol.CSStall)
		p.coord.RequestFlush(compute, pipecontrol.TextureCacheInvalidate)
	}
}

// MemoryBarrier makes prior writes to the given resource categories visible
// to subsequent accesses.
//
// Every qualifying batch receives the same operation set: a data cache flush
// and a stall, plus the invalidates the categories call for. A batch
// qualifies if it has draw or dispatch history or its render cache tracks
// any entries; batches with no relevant history are skipped entirely. An
// empty flag set still emits the base operations for qualifying batches.
func (p *Policy) MemoryBarrier(flags Flags) {
	bits := pipecontrol.DataCacheFlush | pipecontrol.CSStall

	if flags&(VertexBuffer|IndexBuffer|IndirectBuffer) != 0 {
		bits |= pipecontrol.VFCacheInvalidate
	}

	if flags&ConstantBuffer != 0 {
		bits |= pipecontrol.TextureCacheInvalidate |
			pipecontrol.ConstantCacheInvalidate
	}

	if flags&(Texture|Framebuffer) != 0 {
		bits |= pipecontrol.TextureCacheInvalidate |
			pipecontrol.RenderTargetFlush
	}

	for _, b := range p.device.Batches() {
		if b.ContainsDraw() || b.RenderCache().TrackedEntryCount() > 0 {
			p.coord.RequestFlush(b, bits)
		}
	}
}
