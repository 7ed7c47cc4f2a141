package decoder

import "github.com/sarchlab/shapedec/gpu"

// fieldSlicer implements the synchronous update rule of the decoder. Each
// Step call is one triggering edge.
type fieldSlicer struct {
}

// Step computes the next state from this step's inputs. Reset has the highest
// priority and discards any simultaneous valid/word input. Start is recomputed
// from this step's valid flag and is never carried across steps. Data fields
// latch on valid and otherwise hold their previous value.
//
// There is no field validation: every bit pattern, including shape codes with
// no defined meaning, is sliced and latched verbatim.
func (fieldSlicer) Step(
	s *decoderState,
	reset, valid bool,
	word gpu.CommandWord,
) {
	if reset {
		s.reset()
		return
	}

	s.Start = valid
	if !valid {
		return
	}

	s.ShapeType = uint8(word.Extract(gpu.FieldShapeType))
	s.X0 = uint8(word.Extract(gpu.FieldX0))
	s.Y0 = uint8(word.Extract(gpu.FieldY0))
	s.X1 = uint8(word.Extract(gpu.FieldX1))
	s.Y1 = uint8(word.Extract(gpu.FieldY1))
	s.X2 = uint8(word.Extract(gpu.FieldX2))
	s.Y2 = uint8(word.Extract(gpu.FieldY2))
	s.FillEnable = word.Extract(gpu.FieldFillEnable) != 0
	s.Color = word.Extract(gpu.FieldColor)
	s.BgColor = word.Extract(gpu.FieldBgColor)
}
