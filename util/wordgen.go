// Some helpers using closures to generate command words for tests.
package wordgen

import "github.com/sarchlab/shapedec/gpu"

func MakeConstGen(word gpu.CommandWord) func() gpu.CommandWord {
	return func() gpu.CommandWord {
		return word
	}
}

// MakeWalkingGen generates words whose shape code cycles through all 16
// values while the coordinates and colors walk upward.
func MakeWalkingGen(start uint8) func() gpu.CommandWord {
	current := start
	return func() gpu.CommandWord {
		current++
		c := current
		return gpu.WordBuilder{}.
			WithShapeType(c%16).
			WithP0(c, c+1).
			WithP1(c+2, c+3).
			WithP2(c+4, c+5).
			WithFillEnable(c%2 == 0).
			WithColor(uint32(c) * 0x010101).
			WithBgColor(uint32(c) * 0x020202).
			Build()
	}
}
