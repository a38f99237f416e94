// Package hw models the pieces of GPU state the synchronization layer works
// against: buffers, per-engine command batches with their transient cache
// tracking, and the device that owns them.
package hw

// Generation identifies a hardware generation. Raw command encoding and the
// set of applicable workarounds vary per generation.
type Generation int

const (
	Gen9 Generation = iota
	Gen11
	Gen12
)

func (g Generation) String() string {
	switch g {
	case Gen9:
		return "gen9"
	case Gen11:
		return "gen11"
	case Gen12:
		return "gen12"
	default:
		return "unknown"
	}
}

// A Device owns one batch per engine and the scratch buffer that end-of-pipe
// synchronization writes land in. The scratch buffer's content is never read
// back; completion of the write is the signal.
type Device struct {
	name    string
	gen     Generation
	scratch *Buffer
	batches []*Batch
}

// Name returns the name of the device.
func (d *Device) Name() string {
	return d.name
}

// Generation returns the hardware generation of the device.
func (d *Device) Generation() Generation {
	return d.gen
}

// Scratch returns the device-wide scratch buffer.
func (d *Device) Scratch() *Buffer {
	return d.scratch
}

// RenderBatch returns the batch feeding the render engine.
func (d *Device) RenderBatch() *Batch {
	return d.batches[BatchRender]
}

// ComputeBatch returns the batch feeding the compute engine.
func (d *Device) ComputeBatch() *Batch {
	return d.batches[BatchCompute]
}

// Batches returns all batches of the device, render first.
func (d *Device) Batches() []*Batch {
	return d.batches
}
