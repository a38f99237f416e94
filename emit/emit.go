// Package emit provides the raw synchronization-command emitters, one per
// hardware generation. An emitter takes a resolved request, applies the
// generation's workaround quirks, and appends the encoded command to the
// batch stream.
//
// Commands are encoded in a fixed six-dword layout: header, flags, address
// low/high, immediate low/high. The layout is stable for tooling that
// decodes recorded streams; it is not a register-accurate encoding.
package emit

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

const cmdHeader uint32 = 0x7a000004

// New creates the raw emitter for the device's hardware generation.
func New(dev *hw.Device) pipecontrol.RawEmitter {
	switch dev.Generation() {
	case hw.Gen9:
		return &Gen9{scratch: dev.Scratch()}
	case hw.Gen11:
		return &Gen11{Gen9: Gen9{scratch: dev.Scratch()}}
	case hw.Gen12:
		return &Gen12{}
	default:
		panic("unknown hardware generation: " + dev.Generation().String())
	}
}

func encode(b *hw.Batch, req pipecontrol.Request) {
	var addr uint64
	if req.Target != nil {
		addr = req.Target.GPUAddress() + uint64(req.Offset)
	}

	b.Append(
		cmdHeader,
		uint32(req.Flags),
		uint32(addr),
		uint32(addr>>32),
		uint32(req.Imm),
		uint32(req.Imm>>32),
	)
}
