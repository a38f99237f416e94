package pipecontrol

import "github.com/thebigbrain/mesa/hw"

// Builder can build coordinators.
type Builder struct {
	emitter RawEmitter
	scratch *hw.Buffer
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEmitter sets the raw emitter the coordinator forwards resolved
// requests to.
func (b Builder) WithEmitter(emitter RawEmitter) Builder {
	b.emitter = emitter
	return b
}

// WithScratch sets the buffer end-of-pipe synchronization writes land in.
func (b Builder) WithScratch(scratch *hw.Buffer) Builder {
	b.scratch = scratch
	return b
}

// Build builds a coordinator.
func (b Builder) Build() *Coordinator {
	if b.emitter == nil {
		panic("coordinator must have an emitter")
	}

	if b.scratch == nil {
		panic("coordinator must have a scratch buffer")
	}

	return &Coordinator{
		emitter: b.emitter,
		scratch: b.scratch,
	}
}
