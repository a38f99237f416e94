package barrier

import (
	. "github.com/onsi/ginkgo/v2"
	gomock "go.uber.org/mock/gomock"

	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
)

var _ = Describe("Policy", func() {
	var (
		mockCtrl *gomock.Controller
		emitter  *MockRawEmitter
		dev      *hw.Device
		policy   *Policy
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		emitter = NewMockRawEmitter(mockCtrl)
		dev = hw.MakeBuilder().
			WithGeneration(hw.Gen12).
			Build("Dev")

		coord := pipecontrol.MakeBuilder().
			WithEmitter(emitter).
			WithScratch(dev.Scratch()).
			Build()
		policy = MakeBuilder().
			WithDevice(dev).
			WithCoordinator(coord).
			Build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("texture barrier", func() {
		It("should flush then invalidate a render batch with draw history",
			func() {
				dev.RenderBatch().RecordDraw()

				gomock.InOrder(
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.DepthCacheFlush |
								pipecontrol.RenderTargetFlush |
								pipecontrol.CSStall,
						}),
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.TextureCacheInvalidate,
						}),
				)

				policy.TextureBarrier()
			})

		It("should cover a render batch with only tracked cache entries",
			func() {
				dev.RenderBatch().RecordDepth(hw.NewBuffer("Depth", 4096))

				gomock.InOrder(
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.DepthCacheFlush |
								pipecontrol.RenderTargetFlush |
								pipecontrol.CSStall,
						}),
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.TextureCacheInvalidate,
						}),
				)

				policy.TextureBarrier()
			})

		It("should stall then invalidate a compute batch with dispatches",
			func() {
				dev.ComputeBatch().RecordDispatch()

				gomock.InOrder(
					emitter.EXPECT().EmitRaw(dev.ComputeBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.CSStall,
						}),
					emitter.EXPECT().EmitRaw(dev.ComputeBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.TextureCacheInvalidate,
						}),
				)

				policy.TextureBarrier()
			})

		It("should emit nothing for idle batches", func() {
			policy.TextureBarrier()
		})
	})

	Context("memory barrier", func() {
		It("should split the texture-category operations on a busy batch",
			func() {
				dev.RenderBatch().RecordDraw()

				gomock.InOrder(
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.DataCacheFlush |
								pipecontrol.RenderTargetFlush |
								pipecontrol.CSStall |
								pipecontrol.WriteImmediate,
							Target: dev.Scratch(),
						}),
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.TextureCacheInvalidate,
						}),
				)

				policy.MemoryBarrier(Texture)
			})

		It("should emit only base operations for an empty flag set", func() {
			dev.RenderBatch().RecordDraw()

			emitter.EXPECT().EmitRaw(dev.RenderBatch(),
				pipecontrol.Request{
					Flags: pipecontrol.DataCacheFlush |
						pipecontrol.CSStall,
				})

			policy.MemoryBarrier(0)
		})

		It("should invalidate vertex fetch for buffer categories", func() {
			dev.ComputeBatch().RecordDispatch()

			gomock.InOrder(
				emitter.EXPECT().EmitRaw(dev.ComputeBatch(),
					pipecontrol.Request{
						Flags: pipecontrol.DataCacheFlush |
							pipecontrol.CSStall |
							pipecontrol.WriteImmediate,
						Target: dev.Scratch(),
					}),
				emitter.EXPECT().EmitRaw(dev.ComputeBatch(),
					pipecontrol.Request{
						Flags: pipecontrol.VFCacheInvalidate,
					}),
			)

			policy.MemoryBarrier(IndexBuffer | IndirectBuffer)
		})

		It("should invalidate texture and constant caches for constants",
			func() {
				dev.RenderBatch().RecordDraw()

				gomock.InOrder(
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.DataCacheFlush |
								pipecontrol.CSStall |
								pipecontrol.WriteImmediate,
							Target: dev.Scratch(),
						}),
					emitter.EXPECT().EmitRaw(dev.RenderBatch(),
						pipecontrol.Request{
							Flags: pipecontrol.TextureCacheInvalidate |
								pipecontrol.ConstantCacheInvalidate,
						}),
				)

				policy.MemoryBarrier(ConstantBuffer)
			})

		It("should ignore categories without a cache mapping", func() {
			dev.RenderBatch().RecordDraw()

			emitter.EXPECT().EmitRaw(dev.RenderBatch(),
				pipecontrol.Request{
					Flags: pipecontrol.DataCacheFlush |
						pipecontrol.CSStall,
				})

			policy.MemoryBarrier(QueryBuffer | StreamoutBuffer)
		})

		It("should cover every batch with relevant history", func() {
			dev.RenderBatch().RecordDraw()
			dev.ComputeBatch().RecordDispatch()

			emitter.EXPECT().EmitRaw(dev.RenderBatch(),
				pipecontrol.Request{
					Flags: pipecontrol.DataCacheFlush |
						pipecontrol.CSStall,
				})
			emitter.EXPECT().EmitRaw(dev.ComputeBatch(),
				pipecontrol.Request{
					Flags: pipecontrol.DataCacheFlush |
						pipecontrol.CSStall,
				})

			policy.MemoryBarrier(0)
		})

		It("should skip idle batches entirely", func() {
			policy.MemoryBarrier(All)
		})

		It("should repeat identical sequences for identical state", func() {
			dev.RenderBatch().RecordDraw()

			emitter.EXPECT().EmitRaw(dev.RenderBatch(),
				pipecontrol.Request{
					Flags: pipecontrol.DataCacheFlush |
						pipecontrol.CSStall,
				}).Times(2)

			policy.MemoryBarrier(0)
			policy.MemoryBarrier(0)
		})
	})
})
