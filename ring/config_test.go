package ring

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg Config

	BeforeEach(func() {
		cfg = Config{
			NumNodes:         4,
			InitialOccupancy: 2,
			Capacity:         5,
			TimeSteps:        10,
			CollectionTime:   2,
			Dynamics:         Synchronous,
		}
	})

	It("should accept a valid configuration", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	DescribeTable("should reject",
		func(mutate func(*Config), field string) {
			mutate(&cfg)
			err := cfg.Validate()

			var cfgErr *ConfigurationError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Field).To(Equal(field))
		},
		Entry("collection time equal to time steps",
			func(c *Config) { c.CollectionTime = 10 }, "collection_time"),
		Entry("negative collection time",
			func(c *Config) { c.CollectionTime = -1 }, "collection_time"),
		Entry("no time steps",
			func(c *Config) { c.TimeSteps = 0 }, "time_steps"),
		Entry("unknown dynamics",
			func(c *Config) { c.Dynamics = "chaotic" }, "dynamics_type"),
		Entry("per-move cadence with synchronous dynamics",
			func(c *Config) { c.Cadence = CadencePerMove }, "cadence"),
		Entry("unknown cadence",
			func(c *Config) { c.Cadence = "hourly" }, "cadence"),
		Entry("too many particles",
			func(c *Config) { c.InitialOccupancy = 6 }, "initial_occupancy"),
		Entry("negative sample interval",
			func(c *Config) { c.SampleInterval = -1 }, "sample_interval"),
		Entry("sampling per-move recording",
			func(c *Config) {
				c.Dynamics = Sequential
				c.SampleInterval = 10
			}, "sample_interval"),
	)

	It("should keep ticks that are multiples of the sample interval", func() {
		Expect(cfg.Sampled(7)).To(BeTrue())

		cfg.SampleInterval = 10
		Expect(cfg.Sampled(10)).To(BeTrue())
		Expect(cfg.Sampled(20)).To(BeTrue())
		Expect(cfg.Sampled(15)).To(BeFalse())
	})

	It("should resolve the default cadence per dynamics", func() {
		c, err := cfg.EffectiveCadence()
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(CadencePerTick))

		cfg.Dynamics = Sequential
		c, err = cfg.EffectiveCadence()
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(CadencePerMove))
	})

	It("should parse dynamics names", func() {
		for in, want := range map[string]Dynamics{
			"synchronous": Synchronous,
			"Parallel":    Synchronous,
			"sequential":  Sequential,
			"one_step":    Sequential,
			" one-step ":  Sequential,
		} {
			d, err := ParseDynamics(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(want))
		}

		_, err := ParseDynamics("async")
		Expect(err).To(MatchError(ErrConfiguration))
	})

	It("should parse cadence names", func() {
		c, err := ParseCadence("per-tick")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(CadencePerTick))

		c, err = ParseCadence("move")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(CadencePerMove))

		c, err = ParseCadence("")
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(CadenceDefault))

		_, err = ParseCadence("weekly")
		Expect(err).To(HaveOccurred())
	})

	It("should map dynamics to update strategies", func() {
		Expect(Synchronous.Strategy()).To(Equal(UpdateBatched))
		Expect(Sequential.Strategy()).To(Equal(UpdateInPlace))
		Expect(UpdateBatched.String()).To(Equal("batched"))
		Expect(UpdateInPlace.String()).To(Equal("in-place"))
	})
})
