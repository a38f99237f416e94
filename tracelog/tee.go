package tracelog

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// A Tee is a raw emitter that records every resolved request before
// forwarding it, so recording composes with any backend.
type Tee struct {
	recorder *Recorder
	next     pipecontrol.RawEmitter
}

// NewTee creates a tee recording to recorder and forwarding to next.
func NewTee(recorder *Recorder, next pipecontrol.RawEmitter) *Tee {
	if recorder == nil {
		panic("tee must have a recorder")
	}

	if next == nil {
		panic("tee must have a next emitter")
	}

	return &Tee{
		recorder: recorder,
		next:     next,
	}
}

// EmitRaw records the request and forwards it to the wrapped emitter.
func (t *Tee) EmitRaw(b *hw.Batch, req pipecontrol.Request) {
	t.recorder.Record(b, req)
	t.next.EmitRaw(b, req)
}
