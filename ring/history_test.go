package ring

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("History", func() {
	var h *History

	BeforeEach(func() {
		h = NewHistory(State{2, 2}, 3)
	})

	It("should start with the baseline", func() {
		Expect(h.Len()).To(Equal(1))
		Expect(h.At(0)).To(Equal(State{2, 2}))
		Expect(h.CollectionTime()).To(Equal(3))
	})

	It("should skip snapshots within the collection time", func() {
		Expect(h.record(1, State{1, 3})).To(BeFalse())
		Expect(h.record(3, State{1, 3})).To(BeFalse())
		Expect(h.record(4, State{3, 1})).To(BeTrue())

		Expect(h.Len()).To(Equal(2))
		Expect(h.Last()).To(Equal(State{3, 1}))
	})

	It("should keep copies", func() {
		s := State{0, 4}
		h.record(5, s)
		s[0] = 9

		Expect(h.At(1)).To(Equal(State{0, 4}))

		snaps := h.Snapshots()
		snaps[0][0] = 7
		Expect(h.At(0)).To(Equal(State{2, 2}))
	})

	It("should flatten in order", func() {
		h.record(4, State{1, 3})

		Expect(h.Flatten()).To(Equal([]int{2, 2, 1, 3}))
	})

	It("should rebuild from snapshots", func() {
		r := HistoryFromSnapshots(2, []State{{1, 1}, {2, 0}})

		Expect(r.Len()).To(Equal(2))
		Expect(r.CollectionTime()).To(Equal(2))
		Expect(r.At(1)).To(Equal(State{2, 0}))
	})
})
