package harness

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/shapedec/gpu"
)

var _ = Describe("Trace", func() {
	It("should parse entries with named fields", func() {
		trace := `
- reset: true
- valid: true
  shape: 2
  x0: 5
  y0: 5
  x1: 15
  y1: 15
  fill: true
  color: 0xFF0000
- valid: false
`
		stimuli, err := ParseTrace([]byte(trace))

		Expect(err).ToNot(HaveOccurred())
		Expect(stimuli).To(HaveLen(3))

		Expect(stimuli[0].Reset).To(BeTrue())
		Expect(stimuli[0].Valid).To(BeFalse())

		word := stimuli[1].Word
		Expect(stimuli[1].Valid).To(BeTrue())
		Expect(word.Extract(gpu.FieldShapeType)).To(Equal(uint32(2)))
		Expect(word.Extract(gpu.FieldX0)).To(Equal(uint32(5)))
		Expect(word.Extract(gpu.FieldY1)).To(Equal(uint32(15)))
		Expect(word.Extract(gpu.FieldFillEnable)).To(Equal(uint32(1)))
		Expect(word.Extract(gpu.FieldColor)).To(Equal(uint32(0xFF0000)))

		Expect(stimuli[2].Valid).To(BeFalse())
		Expect(stimuli[2].Reset).To(BeFalse())
	})

	It("should parse raw hex words", func() {
		trace := `
- valid: true
  word: 0x100000a0a00007fffff8000000000000
`
		stimuli, err := ParseTrace([]byte(trace))

		Expect(err).ToNot(HaveOccurred())
		Expect(stimuli).To(HaveLen(1))
		Expect(stimuli[0].Word).To(Equal(gpu.CommandWord{
			Hi: 0x100000A0A00007FF,
			Lo: 0xFFF8000000000000,
		}))
	})

	It("should zero-extend short raw words", func() {
		stimuli, err := ParseTrace([]byte("- valid: true\n  word: \"ff\"\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(stimuli[0].Word).To(Equal(gpu.CommandWord{Lo: 0xFF}))
	})

	It("should reject words wider than 128 bits", func() {
		_, err := ParseTrace([]byte(
			"- word: \"1100000a0a00007fffff8000000000000\"\n"))

		Expect(err).To(HaveOccurred())
	})

	It("should reject non-hex words", func() {
		_, err := ParseTrace([]byte("- word: \"zz\"\n"))

		Expect(err).To(HaveOccurred())
	})

	It("should reject malformed YAML", func() {
		_, err := ParseTrace([]byte(": not a trace"))

		Expect(err).To(HaveOccurred())
	})
})
