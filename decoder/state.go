package decoder

import "github.com/sarchlab/shapedec/gpu"

// decoderState holds the latched decoder outputs. The zero value is the reset
// state. The state is owned by the decoder and mutated only by fieldSlicer.
type decoderState struct {
	Start      bool
	ShapeType  uint8
	X0, Y0     uint8
	X1, Y1     uint8
	X2, Y2     uint8
	FillEnable bool
	Color      uint32
	BgColor    uint32
}

func (s *decoderState) reset() {
	*s = decoderState{}
}

func (s *decoderState) output() gpu.DecodedCommand {
	return gpu.DecodedCommand{
		Start:      s.Start,
		ShapeType:  s.ShapeType,
		X0:         s.X0,
		Y0:         s.Y0,
		X1:         s.X1,
		Y1:         s.Y1,
		X2:         s.X2,
		Y2:         s.Y2,
		FillEnable: s.FillEnable,
		Color:      s.Color,
		BgColor:    s.BgColor,
	}
}
