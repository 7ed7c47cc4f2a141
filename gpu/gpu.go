// Package gpu defines the commonly used data structures for the shape
// rendering GPU front end.
package gpu

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Shape codes carried in the shape_type field of a command word. These names
// are a convention between the command producer and the rasterizer. The
// decoder itself treats all 16 possible codes uniformly and never checks them.
const (
	ShapeLine     = 1
	ShapeRect     = 2
	ShapeTriangle = 3
	ShapeCircle   = 4
)

// DecodedCommand is the set of latched decoder outputs. Start is true for
// exactly one step per accepted command; the remaining fields hold the
// bit-sliced values of the most recently accepted command word.
type DecodedCommand struct {
	Start      bool
	ShapeType  uint8
	X0, Y0     uint8
	X1, Y1     uint8
	X2, Y2     uint8
	FillEnable bool
	Color      uint32
	BgColor    uint32
}

// Decoder is a command decoder that a driver can attach to. The decoder owns
// its output state exclusively; drivers and downstream consumers only read it.
type Decoder interface {
	sim.Component

	// SetRemotePort tells the decoder where to deliver decoded-command
	// pulses.
	SetRemotePort(remote sim.RemotePort)

	// Output returns a snapshot of the currently latched outputs.
	Output() DecodedCommand

	// Reset forces the all-zero output state, the same as a reset stimulus.
	Reset()
}
