package hw

// BatchKind tells which hardware engine a batch feeds.
type BatchKind int

// Batches either feed the render engine or the compute engine.
const (
	BatchRender BatchKind = iota
	BatchCompute
)

func (k BatchKind) String() string {
	switch k {
	case BatchRender:
		return "render"
	case BatchCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// A Batch is an independent stream of hardware commands under construction,
// together with the transient state the synchronization policy inspects:
// whether the batch has recorded draw or dispatch work since it was last
// reset, and which buffers its render and depth caches may hold dirty lines
// for. A batch is only ever mutated by the single thread building it.
type Batch struct {
	name string
	kind BatchKind

	commands     []uint32
	commandCount int

	containsDraw bool
	renderCache  *CacheTracker
	depthCache   *CacheTracker
}

// NewBatch creates an empty batch feeding the given engine.
func NewBatch(name string, kind BatchKind) *Batch {
	return &Batch{
		name:        name,
		kind:        kind,
		renderCache: NewCacheTracker(),
		depthCache:  NewCacheTracker(),
	}
}

// Name returns the name of the batch.
func (b *Batch) Name() string {
	return b.name
}

// Kind returns the engine the batch feeds.
func (b *Batch) Kind() BatchKind {
	return b.kind
}

// ContainsDraw returns true if the batch has recorded draw or dispatch work
// since the last reset.
func (b *Batch) ContainsDraw() bool {
	return b.containsDraw
}

// RenderCache returns the tracker for the render target cache.
func (b *Batch) RenderCache() *CacheTracker {
	return b.renderCache
}

// DepthCache returns the tracker for the depth cache.
func (b *Batch) DepthCache() *CacheTracker {
	return b.depthCache
}

// RecordDraw marks the batch as containing draw work and tracks the color
// targets in the render cache.
func (b *Batch) RecordDraw(colorTargets ...*Buffer) {
	b.containsDraw = true
	for _, t := range colorTargets {
		b.renderCache.Track(t)
	}
}

// RecordDepth tracks a depth/stencil target in the depth cache.
func (b *Batch) RecordDepth(target *Buffer) {
	b.depthCache.Track(target)
}

// RecordDispatch marks the batch as containing compute dispatch work.
func (b *Batch) RecordDispatch() {
	b.containsDraw = true
}

// Append adds encoded command dwords to the end of the stream and counts
// them as one command.
func (b *Batch) Append(dwords ...uint32) {
	b.commands = append(b.commands, dwords...)
	b.commandCount++
}

// Commands returns the encoded command stream.
func (b *Batch) Commands() []uint32 {
	return b.commands
}

// CommandCount returns the number of commands appended since the last
// reset.
func (b *Batch) CommandCount() int {
	return b.commandCount
}

// Reset starts a new batch: the command stream, the draw-history flag, and
// all cache trackers are cleared.
func (b *Batch) Reset() {
	b.commands = nil
	b.commandCount = 0
	b.containsDraw = false
	b.renderCache.Clear()
	b.depthCache.Clear()
}
