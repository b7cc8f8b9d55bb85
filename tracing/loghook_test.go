package tracing

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ringwalk/ring"
)

var _ = Describe("LogHook", func() {
	run := func(level slog.Level) string {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf,
			&slog.HandlerOptions{Level: level}))

		cfg := ring.Config{
			NumNodes:         3,
			InitialOccupancy: 1,
			Capacity:         2,
			TimeSteps:        2,
		}
		s := ring.NewSynchronousScheduler(cfg, ring.FixedDirectionSource(ring.Left))
		s.AcceptHook(NewLogHook(logger))

		_, err := s.Run(ring.State{1, 1, 1})
		Expect(err).NotTo(HaveOccurred())

		return buf.String()
	}

	It("should log every tick at debug level", func() {
		out := run(slog.LevelDebug)

		Expect(out).To(ContainSubstring("msg=tick tick=1 particles=3"))
		Expect(out).To(ContainSubstring("msg=tick tick=2 particles=3"))
	})

	It("should stay quiet above debug level", func() {
		Expect(run(slog.LevelInfo)).To(BeEmpty())
	})
})
