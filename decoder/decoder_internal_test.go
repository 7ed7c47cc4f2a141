package decoder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/shapedec/gpu"
)

var _ = Describe("Decoder", func() {
	var d *Decoder

	BeforeEach(func() {
		d = Builder{}.WithFreq(1).Build("Decoder")
	})

	It("should start in the reset state", func() {
		Expect(d.Output()).To(Equal(gpu.DecodedCommand{}))
	})

	It("should expose latched state through Output", func() {
		word := gpu.WordBuilder{}.
			WithShapeType(gpu.ShapeCircle).
			WithP0(20, 20).
			WithP1(10, 0).
			WithColor(0x0000FF).
			Build()

		d.slicer.Step(&d.state, false, true, word)

		out := d.Output()
		Expect(out.Start).To(BeTrue())
		Expect(out.ShapeType).To(Equal(uint8(gpu.ShapeCircle)))
		Expect(out.X0).To(Equal(uint8(20)))
		Expect(out.Y0).To(Equal(uint8(20)))
		Expect(out.X1).To(Equal(uint8(10)))
		Expect(out.Color).To(Equal(uint32(0x0000FF)))
	})

	It("should zero all outputs on Reset", func() {
		d.slicer.Step(&d.state, false, true,
			gpu.WordBuilder{}.WithShapeType(7).WithColor(0xABCDEF).Build())

		d.Reset()

		Expect(d.Output()).To(Equal(gpu.DecodedCommand{}))
	})
})
