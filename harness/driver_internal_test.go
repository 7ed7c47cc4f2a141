package harness

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/shapedec/gpu"
)

var _ = Describe("Driver", func() {
	var driver *driverImpl

	BeforeEach(func() {
		driver = &driverImpl{}
		driver.TickingComponent =
			sim.NewTickingComponent("Driver", nil, 1, driver)
	})

	It("should handle the Feed API", func() {
		stimuli := []Stimulus{
			{Reset: true},
			{Valid: true, Word: gpu.WordBuilder{}.WithShapeType(1).Build()},
			{},
		}

		driver.Feed(stimuli)

		Expect(driver.feedTasks).To(HaveLen(1))
		Expect(driver.feedTasks[0].stimuli).To(Equal(stimuli))
		Expect(driver.feedTasks[0].next).To(Equal(0))
	})

	It("should keep Feed sequences in order", func() {
		driver.Feed([]Stimulus{{Reset: true}})
		driver.Feed([]Stimulus{{Valid: true}})

		Expect(driver.feedTasks).To(HaveLen(2))
		Expect(driver.feedTasks[0].stimuli[0].Reset).To(BeTrue())
		Expect(driver.feedTasks[1].stimuli[0].Valid).To(BeTrue())
	})

	It("should handle the Collect API", func() {
		var dst []gpu.DecodedCommand

		driver.Collect(&dst)

		Expect(driver.collectTasks).To(HaveLen(1))
		Expect(driver.collectTasks[0].dst).To(BeIdenticalTo(&dst))
	})
})
