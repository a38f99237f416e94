package pipecontrol

import "github.com/thebigbrain/mesa/hw"

// A Request is a fully resolved synchronization command, ready for a raw
// emitter to encode. A nil Target means pure cache control with no memory
// write; there are no implicit defaults.
type Request struct {
	Flags  Flags
	Target *hw.Buffer
	Offset uint32
	Imm    uint64
}

// RawEmitter appends one hardware command for a resolved request to a
// batch's command stream. Generation-specific encoding and workaround quirks
// are the emitter's responsibility; callers hand it only requests that are
// already safe to issue atomically.
type RawEmitter interface {
	EmitRaw(b *hw.Batch, req Request)
}
