package pipecontrol

import "strings"

// Flags is a bitmask of cache and pipeline effects that one synchronization
// command can request. The bits fall into three disjoint groups: flush bits
// write dirty cache contents to memory, invalidate bits drop cached reads so
// the next access re-fetches from memory, and control bits steer stalling
// and post-sync writes. The groups stay bitwise-composable so that resolved
// requests map directly onto the hardware encoding.
type Flags uint32

const (
	// Flush bits.
	RenderTargetFlush Flags = 1 << iota
	DepthCacheFlush
	DataCacheFlush
	TileCacheFlush

	// Invalidate bits.
	TextureCacheInvalidate
	ConstantCacheInvalidate
	VFCacheInvalidate
	InstructionCacheInvalidate
	StateCacheInvalidate

	// Control bits.
	CSStall
	StallAtScoreboard
	DepthStall
	FlushEnable
	NotifyEnable
	WriteImmediate
	WriteTimestamp
	WriteDepthCount
)

// CacheFlushBits covers every bit that writes dirty cache contents to
// memory.
const CacheFlushBits = RenderTargetFlush | DepthCacheFlush | DataCacheFlush |
	TileCacheFlush

// CacheInvalidateBits covers every bit that drops cached read data.
const CacheInvalidateBits = TextureCacheInvalidate | ConstantCacheInvalidate |
	VFCacheInvalidate | InstructionCacheInvalidate | StateCacheInvalidate

// PostSyncWriteBits covers every bit that requests a memory write at the
// synchronization point.
const PostSyncWriteBits = WriteImmediate | WriteTimestamp | WriteDepthCount

// Intersects returns true if the two flag sets share at least one bit.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

// Contains returns true if every bit of other is set in f.
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Without returns f with all bits of other removed.
func (f Flags) Without(other Flags) Flags {
	return f &^ other
}

var flagNames = []struct {
	bit  Flags
	name string
}{
	{RenderTargetFlush, "RenderTargetFlush"},
	{DepthCacheFlush, "DepthCacheFlush"},
	{DataCacheFlush, "DataCacheFlush"},
	{TileCacheFlush, "TileCacheFlush"},
	{TextureCacheInvalidate, "TextureCacheInvalidate"},
	{ConstantCacheInvalidate, "ConstantCacheInvalidate"},
	{VFCacheInvalidate, "VFCacheInvalidate"},
	{InstructionCacheInvalidate, "InstructionCacheInvalidate"},
	{StateCacheInvalidate, "StateCacheInvalidate"},
	{CSStall, "CSStall"},
	{StallAtScoreboard, "StallAtScoreboard"},
	{DepthStall, "DepthStall"},
	{FlushEnable, "FlushEnable"},
	{NotifyEnable, "NotifyEnable"},
	{WriteImmediate, "WriteImmediate"},
	{WriteTimestamp, "WriteTimestamp"},
	{WriteDepthCount, "WriteDepthCount"},
}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}

	names := make([]string, 0, 4)
	for _, fn := range flagNames {
		if f.Intersects(fn.bit) {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, "|")
}
