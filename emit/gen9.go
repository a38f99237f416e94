package emit

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// Gen9 emits raw synchronization commands for gen9 hardware.
type Gen9 struct {
	scratch *hw.Buffer
}

// bits that keep a CS stall from deadlocking the command streamer; a stall
// with none of these set must gain StallAtScoreboard.
const csStallCompany = pipecontrol.CacheFlushBits |
	pipecontrol.PostSyncWriteBits |
	pipecontrol.DepthStall |
	pipecontrol.StallAtScoreboard |
	pipecontrol.NotifyEnable

// EmitRaw applies the gen9 workarounds to the request and appends one
// encoded command to the batch.
//
// Two quirks apply on this generation: a vertex-fetch cache invalidation
// only takes effect when the command also performs a post-sync write, so a
// request lacking one gains an immediate write to the scratch buffer; and a
// command streamer stall must be accompanied by at least one other stalling
// or flushing effect.
func (e *Gen9) EmitRaw(b *hw.Batch, req pipecontrol.Request) {
	if req.Flags.Intersects(pipecontrol.VFCacheInvalidate) &&
		!req.Flags.Intersects(pipecontrol.PostSyncWriteBits) {
		req.Flags |= pipecontrol.WriteImmediate
		req.Target = e.scratch
		req.Offset = 0
		req.Imm = 0
	}

	if req.Flags.Intersects(pipecontrol.CSStall) &&
		!req.Flags.Intersects(csStallCompany) {
		req.Flags |= pipecontrol.StallAtScoreboard
	}

	encode(b, req)
}

// Gen11 emits raw synchronization commands for gen11 hardware. The gen9
// workarounds carry over unchanged.
type Gen11 struct {
	Gen9
}
