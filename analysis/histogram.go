// Package analysis turns recorded histories into occupancy statistics.
package analysis

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Bin is one occupancy value and how often it was seen.
type Bin struct {
	Value int
	Count uint64
}

// Histogram counts occupancy values in unit-wide bins.
type Histogram struct {
	min    int
	counts []uint64
	total  uint64
	sum    float64
	sumSq  float64
}

// NewHistogram creates a Histogram holding values.
func NewHistogram(values []int) *Histogram {
	h := &Histogram{}
	for _, v := range values {
		h.Add(v)
	}

	return h
}

// Add records one value.
func (h *Histogram) Add(v int) {
	if h.total == 0 {
		h.min = v
		h.counts = []uint64{0}
	}

	if v < h.min {
		grown := make([]uint64, len(h.counts)+h.min-v)
		copy(grown[h.min-v:], h.counts)
		h.counts = grown
		h.min = v
	}

	idx := v - h.min
	if idx >= len(h.counts) {
		grown := make([]uint64, idx+1)
		copy(grown, h.counts)
		h.counts = grown
	}

	h.counts[idx]++
	h.total++
	h.sum += float64(v)
	h.sumSq += float64(v) * float64(v)
}

// Total returns the number of values recorded.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Min returns the smallest value, or 0 when empty.
func (h *Histogram) Min() int {
	return h.min
}

// Max returns the largest value, or 0 when empty.
func (h *Histogram) Max() int {
	if h.total == 0 {
		return 0
	}

	return h.min + len(h.counts) - 1
}

// Count returns how many times v was recorded.
func (h *Histogram) Count(v int) uint64 {
	idx := v - h.min
	if h.total == 0 || idx < 0 || idx >= len(h.counts) {
		return 0
	}

	return h.counts[idx]
}

// Bins returns every bin from Min to Max, including empty ones.
func (h *Histogram) Bins() []Bin {
	bins := make([]Bin, len(h.counts))
	for i, c := range h.counts {
		bins[i] = Bin{Value: h.min + i, Count: c}
	}

	return bins
}

// Mean returns the average value, or 0 when empty.
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}

	return h.sum / float64(h.total)
}

// Variance returns the population variance, or 0 when empty.
func (h *Histogram) Variance() float64 {
	if h.total == 0 {
		return 0
	}

	mean := h.Mean()

	return math.Max(0, h.sumSq/float64(h.total)-mean*mean)
}

// Render draws the histogram as horizontal bars at most width characters
// long.
func (h *Histogram) Render(w io.Writer, width int) error {
	if h.total == 0 {
		_, err := fmt.Fprintln(w, "(no data)")
		return err
	}

	if width < 1 {
		width = 1
	}

	var peak uint64
	for _, c := range h.counts {
		if c > peak {
			peak = c
		}
	}

	labelWidth := len(fmt.Sprint(h.Max()))
	if l := len(fmt.Sprint(h.Min())); l > labelWidth {
		labelWidth = l
	}

	for _, b := range h.Bins() {
		bar := int(math.Round(float64(b.Count) / float64(peak) * float64(width)))
		if b.Count > 0 && bar == 0 {
			bar = 1
		}

		_, err := fmt.Fprintf(w, "%*d | %s %d\n",
			labelWidth, b.Value, strings.Repeat("#", bar), b.Count)
		if err != nil {
			return err
		}
	}

	return nil
}
