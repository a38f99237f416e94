package emit

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// Gen12 emits raw synchronization commands for gen12 hardware.
type Gen12 struct{}

// EmitRaw applies the gen12 workarounds to the request and appends one
// encoded command to the batch.
//
// On this generation a depth cache flush must be paired with a depth stall,
// and a render target flush that reaches memory through a post-sync write
// must also flush the tile cache. The gen9 vertex-fetch post-sync quirk no
// longer applies; the CS stall company rule still does.
func (e *Gen12) EmitRaw(b *hw.Batch, req pipecontrol.Request) {
	if req.Flags.Intersects(pipecontrol.DepthCacheFlush) {
		req.Flags |= pipecontrol.DepthStall
	}

	if req.Flags.Intersects(pipecontrol.RenderTargetFlush) &&
		req.Flags.Intersects(pipecontrol.PostSyncWriteBits) {
		req.Flags |= pipecontrol.TileCacheFlush
	}

	if req.Flags.Intersects(pipecontrol.CSStall) &&
		!req.Flags.Intersects(csStallCompany) {
		req.Flags |= pipecontrol.StallAtScoreboard
	}

	encode(b, req)
}
