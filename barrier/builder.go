package barrier

import (
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

// Builder can build barrier policies.
type Builder struct {
	device *hw.Device
	coord  *pipecontrol.Coordinator
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithDevice sets the device whose batches the policy dispatches over.
func (b Builder) WithDevice(device *hw.Device) Builder {
	b.device = device
	return b
}

// WithCoordinator sets the coordinator that resolves the policy's requests.
func (b Builder) WithCoordinator(coord *pipecontrol.Coordinator) Builder {
	b.coord = coord
	return b
}

// Build builds a policy.
func (b Builder) Build() *Policy {
	if b.device == nil {
		panic("policy must have a device")
	}

	if b.coord == nil {
		panic("policy must have a coordinator")
	}

	return &Policy{
		device: b.device,
		coord:  b.coord,
	}
}
