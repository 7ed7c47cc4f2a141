// Package harness defines the driver that feeds stimulus sequences to a
// command decoder and collects the decoded results.
package harness

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/shapedec/gpu"
)

// Driver provides the interface to drive a command decoder.
type Driver interface {
	// RegisterDecoder attaches a decoder to the driver. The driver
	// establishes the connections to the decoder.
	RegisterDecoder(dec gpu.Decoder)

	// Feed schedules a stimulus sequence. One stimulus is applied per cycle,
	// in order.
	Feed(stimuli []Stimulus)

	// Collect appends every decoded command the decoder emits to dst, in
	// acceptance order.
	Collect(dst *[]gpu.DecodedCommand)

	// Run runs the simulation until all scheduled stimuli are consumed and
	// the system is quiet.
	Run()
}

// Stimulus is one step of decoder input. The word is only meaningful when
// Valid is set; Reset dominates both.
type Stimulus struct {
	Reset bool
	Valid bool
	Word  gpu.CommandWord
}

type driverImpl struct {
	*sim.TickingComponent

	decoder   gpu.Decoder
	decoderIn sim.RemotePort

	toDecoder   sim.Port
	fromDecoder sim.Port

	feedTasks    []*feedTask
	collectTasks []*collectTask
}

type feedTask struct {
	stimuli []Stimulus
	next    int
}

func (t *feedTask) isFinished() bool {
	return t.next >= len(t.stimuli)
}

type collectTask struct {
	dst *[]gpu.DecodedCommand
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.doFeed() || madeProgress
	madeProgress = d.doCollect() || madeProgress

	return madeProgress
}

func (d *driverImpl) doFeed() bool {
	madeProgress := false

	if len(d.feedTasks) == 0 {
		return false
	}

	// Sequences are applied strictly in order, one stimulus per cycle.
	task := d.feedTasks[0]
	madeProgress = d.doOneFeedStep(task)

	if task.isFinished() {
		d.feedTasks = d.feedTasks[1:]
	}

	return madeProgress
}

func (d *driverImpl) doOneFeedStep(task *feedTask) bool {
	if !d.toDecoder.CanSend() {
		return false
	}

	s := task.stimuli[task.next]
	msg := gpu.CommandMsgBuilder{}.
		WithSrc(d.toDecoder.AsRemote()).
		WithDst(d.decoderIn).
		WithReset(s.Reset).
		WithValid(s.Valid).
		WithWord(s.Word).
		Build()

	err := d.toDecoder.Send(msg)
	if err != nil {
		panic("decoder cannot handle the stimulus rate")
	}

	task.next++

	return true
}

func (d *driverImpl) doCollect() bool {
	madeProgress := false

	for {
		item := d.fromDecoder.PeekIncoming()
		if item == nil {
			break
		}

		msg := item.(*gpu.DecodedMsg)
		for _, task := range d.collectTasks {
			*task.dst = append(*task.dst, msg.Cmd)
		}

		d.fromDecoder.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

// RegisterDecoder attaches a decoder to the driver. The driver will establish
// the command and pulse connections to the decoder.
func (d *driverImpl) RegisterDecoder(dec gpu.Decoder) {
	d.decoder = dec

	decIn := dec.GetPortByName("In")
	decOut := dec.GetPortByName("Out")
	d.decoderIn = decIn.AsRemote()

	cmdConn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + ".CmdConn")
	cmdConn.PlugIn(d.toDecoder)
	cmdConn.PlugIn(decIn)

	pulseConn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + ".PulseConn")
	pulseConn.PlugIn(decOut)
	pulseConn.PlugIn(d.fromDecoder)

	dec.SetRemotePort(d.fromDecoder.AsRemote())
}

// Feed schedules a stimulus sequence.
func (d *driverImpl) Feed(stimuli []Stimulus) {
	d.feedTasks = append(d.feedTasks, &feedTask{stimuli: stimuli})
}

// Collect registers a sink for decoded commands.
func (d *driverImpl) Collect(dst *[]gpu.DecodedCommand) {
	d.collectTasks = append(d.collectTasks, &collectTask{dst: dst})
}

// Run runs all the stimuli in the driver.
func (d *driverImpl) Run() {
	d.TickNow()
	d.Engine.Run()
}
