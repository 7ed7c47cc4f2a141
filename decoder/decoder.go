// Package decoder implements the fixed-layout command decoder of the shape
// rendering GPU front end.
package decoder

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/shapedec/gpu"
)

// Decoder samples one command stimulus per tick on its In port, latches the
// sub-fields of accepted command words, and delivers one DecodedMsg per
// acceptance through its Out port.
type Decoder struct {
	*sim.TickingComponent

	in     sim.Port
	out    sim.Port
	remote sim.RemotePort

	state      decoderState
	slicer     fieldSlicer
	pendingOut *gpu.DecodedMsg
}

// SetRemotePort sets the port that decoded-command pulses are delivered to.
// Without a remote port the decoder still latches; pulses are only observable
// through Output.
func (d *Decoder) SetRemotePort(remote sim.RemotePort) {
	d.remote = remote
}

// Output returns a snapshot of the currently latched outputs.
func (d *Decoder) Output() gpu.DecodedCommand {
	return d.state.output()
}

// Reset forces the all-zero output state immediately, equivalent to a reset
// stimulus on the next edge.
func (d *Decoder) Reset() {
	d.state.reset()
}

// Tick runs the decoder for one cycle.
func (d *Decoder) Tick() (madeProgress bool) {
	madeProgress = d.doSend() || madeProgress
	madeProgress = d.doStep() || madeProgress

	return madeProgress
}

func (d *Decoder) doSend() bool {
	if d.pendingOut == nil {
		return false
	}

	err := d.out.Send(d.pendingOut)
	if err != nil {
		Trace("Backpressure",
			"Type", "SendFailed",
			"Time", float64(d.Engine.CurrentTime()*1e9),
			"ShapeType", d.pendingOut.Cmd.ShapeType,
		)
		return false
	}

	d.pendingOut = nil

	return true
}

func (d *Decoder) doStep() bool {
	// A pending pulse stalls sampling so back-to-back acceptances cannot
	// overwrite an undelivered one.
	if d.pendingOut != nil {
		return false
	}

	item := d.in.PeekIncoming()
	if item == nil {
		return false
	}

	msg := item.(*gpu.CommandMsg)
	d.slicer.Step(&d.state, msg.Reset, msg.Valid, msg.Word)
	d.in.RetrieveIncoming()

	Trace("Step",
		"Time", float64(d.Engine.CurrentTime()*1e9),
		"Reset", msg.Reset,
		"Valid", msg.Valid,
		"Word", msg.Word.String(),
		"Start", d.state.Start,
	)
	PrintState(&d.state)

	if d.state.Start && d.remote != "" {
		d.pendingOut = gpu.DecodedMsgBuilder{}.
			WithSrc(d.out.AsRemote()).
			WithDst(d.remote).
			WithCmd(d.state.output()).
			Build()
	}

	return true
}
