package main

import (
	_ "embed"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/shapedec/decoder"
	"github.com/sarchlab/shapedec/gpu"
	"github.com/sarchlab/shapedec/harness"
)

//go:embed shapes.yaml
var shapesTrace []byte

func drawShapes(driver harness.Driver) {
	stimuli, err := harness.ParseTrace(shapesTrace)
	if err != nil {
		panic(err)
	}

	var decoded []gpu.DecodedCommand
	driver.Feed(stimuli)
	driver.Collect(&decoded)
	driver.Run()

	for _, cmd := range decoded {
		fmt.Printf(
			"shape=%X p0=(%d,%d) p1=(%d,%d) p2=(%d,%d) fill=%v "+
				"color=%06X bg=%06X\n",
			cmd.ShapeType, cmd.X0, cmd.Y0, cmd.X1, cmd.Y1, cmd.X2, cmd.Y2,
			cmd.FillEnable, cmd.Color, cmd.BgColor)
	}
}

func main() {
	engine := sim.NewSerialEngine()

	driver := harness.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	dec := decoder.Builder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Decoder")

	driver.RegisterDecoder(dec)

	drawShapes(driver)

	atexit.Exit(0)
}
