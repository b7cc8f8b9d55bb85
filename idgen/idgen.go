// Package idgen generates identifiers for simulation runs.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// Generator produces unique identifiers.
type Generator interface {
	Generate() string
}

// NewSequential returns a generator emitting prefix1, prefix2, ... in order.
func NewSequential(prefix string) Generator {
	return &sequentialGenerator{prefix: prefix}
}

// NewXID returns a generator of globally unique, sortable xid strings.
func NewXID() Generator {
	return xidGenerator{}
}

type sequentialGenerator struct {
	prefix string
	nextID uint64
}

func (g *sequentialGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return g.prefix + strconv.FormatUint(idNumber, 10)
}

type xidGenerator struct{}

func (xidGenerator) Generate() string {
	return xid.New().String()
}
