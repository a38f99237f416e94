package barrier

// Flags describes the resource categories a memory barrier covers. The
// categories are abstract: the policy translates them into concrete cache
// operations. Categories with no mapping on this hardware are ignored.
type Flags uint32

const (
	VertexBuffer Flags = 1 << iota
	IndexBuffer
	IndirectBuffer
	ConstantBuffer
	Texture
	Framebuffer
	StreamoutBuffer
	QueryBuffer
	ShaderBuffer
	Image
	MappedBuffer
	GlobalBuffer
)

// All covers every resource category.
const All = VertexBuffer | IndexBuffer | IndirectBuffer | ConstantBuffer |
	Texture | Framebuffer | StreamoutBuffer | QueryBuffer | ShaderBuffer |
	Image | MappedBuffer | GlobalBuffer
