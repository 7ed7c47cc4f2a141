package harness

import "github.com/sarchlab/akita/v4/sim"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	d.toDecoder = sim.NewPort(d, 1, 1, name+".ToDecoder")
	d.fromDecoder = sim.NewPort(d, 1, 1, name+".FromDecoder")
	d.AddPort("ToDecoder", d.toDecoder)
	d.AddPort("FromDecoder", d.fromDecoder)

	return d
}
