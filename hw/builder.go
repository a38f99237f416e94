package hw

// Builder can build devices.
type Builder struct {
	gen         Generation
	scratchSize uint64
}

// MakeBuilder creates a new builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		gen:         Gen12,
		scratchSize: 4096,
	}
}

// WithGeneration sets the hardware generation of the device to build.
func (b Builder) WithGeneration(gen Generation) Builder {
	b.gen = gen
	return b
}

// WithScratchSize sets the size of the scratch buffer.
func (b Builder) WithScratchSize(size uint64) Builder {
	b.scratchSize = size
	return b
}

// Build builds a device with one render batch and one compute batch.
func (b Builder) Build(name string) *Device {
	if name == "" {
		panic("device must have a name")
	}

	return &Device{
		name:    name,
		gen:     b.gen,
		scratch: NewBuffer(name+".Scratch", b.scratchSize),
		batches: []*Batch{
			NewBatch(name+".Render", BatchRender),
			NewBatch(name+".Compute", BatchCompute),
		},
	}
}
