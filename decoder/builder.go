package decoder

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new decoders.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the decoder.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a decoder. The output state starts zeroed, the same as after
// a reset.
func (b Builder) Build(name string) *Decoder {
	d := &Decoder{}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	d.in = sim.NewPort(d, 1, 1, name+".In")
	d.out = sim.NewPort(d, 1, 1, name+".Out")
	d.AddPort("In", d.in)
	d.AddPort("Out", d.out)

	return d
}
