package bias_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avasil/metadyn/internal/bias"
	"github.com/avasil/metadyn/internal/landscape"
)

func TestBias(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bias Suite")
}

var _ = Describe("Metadynamics flooding", func() {
	var (
		base *landscape.Harmonic
		meta *bias.Metadynamics
	)

	BeforeEach(func() {
		base = landscape.NewHarmonic(1.0, 5.0)
		var err error
		meta, err = bias.NewMetadynamics(base, bias.Options{
			Amplitude: 0.1,
			Sigma:     0.1,
			Trigger:   1,
			GridMin:   0,
			GridMax:   10,
			Bins:      100,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("raises the energy at the deposition site", func() {
		unbiased := meta.Energy(5.0)
		meta.NotifyStep(5.0)

		Expect(meta.Updates()).To(Equal(1))
		Expect(meta.Energy(5.0)).To(BeNumerically(">", unbiased+0.05))
	})

	It("decays toward the unbiased value away from the kernel", func() {
		meta.NotifyStep(5.0)

		// several sigma away the bump is negligible
		far := 5.0 + 8*0.1
		Expect(meta.Energy(far) - base.Energy(far)).To(BeNumerically("<", 1e-10))
	})

	It("clamps far-field queries to the edge bins", func() {
		meta.NotifyStep(0.2)

		Expect(func() { meta.Energy(-1000.0) }).NotTo(Panic())
		Expect(meta.Energy(-1000.0) - base.Energy(-1000.0)).To(
			Equal(meta.Energy(0.0) - base.Energy(0.0)))
	})
})

var _ = Describe("Grid mode against the analytic oracle", func() {
	It("accumulates the same bias at every bin center", func() {
		base := landscape.NewDoubleWell()

		grid, err := bias.NewMetadynamics(base, bias.Options{
			Amplitude: 0.2,
			Sigma:     0.3,
			Trigger:   5,
			GridMin:   -2,
			GridMax:   2,
			Bins:      80,
		})
		Expect(err).NotTo(HaveOccurred())

		oracle, err := bias.NewAnalyticMetadynamics(base, 0.2, 0.3, 5)
		Expect(err).NotTo(HaveOccurred())

		// walk both engines through the same trajectory
		for i := 0; i < 200; i++ {
			x := -1.5 + 3.0*float64(i%37)/37.0
			grid.NotifyStep(x)
			oracle.NotifyStep(x)
		}
		Expect(grid.Updates()).To(Equal(oracle.Updates()))
		Expect(grid.Updates()).To(Equal(40))

		for _, c := range grid.Grid().Centers() {
			Expect(grid.Grid().EnergyAt(c)).To(
				BeNumerically("~", oracle.BiasEnergy(c), 1e-12),
				"bias mismatch at center %f", c)
		}
	})
})
