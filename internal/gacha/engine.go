// Package gacha performs weighted random item draws.
package gacha

import (
	"sort"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/utils"
)

// RandFunc returns a uniform integer in [min, max]
type RandFunc func(min, max int) int

type entry struct {
	itemID     int
	cumulative int
}

// Engine draws items with probability proportional to their gacha weight.
// It is immutable after construction and safe for concurrent use when its
// RandFunc is.
type Engine struct {
	entries []entry
	total   int
	rnd     RandFunc
}

// Option configures an Engine
type Option func(*Engine)

// WithRand replaces the random source
func WithRand(rnd RandFunc) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// NewEngine builds an engine from item definitions. Items with a
// non-positive weight are skipped; the rest are walked in ascending id order.
func NewEngine(items []domain.ItemDefinition, opts ...Option) *Engine {
	sorted := make([]domain.ItemDefinition, 0, len(items))
	for _, def := range items {
		if def.GachaWeight > 0 {
			sorted = append(sorted, def)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	e := &Engine{
		entries: make([]entry, 0, len(sorted)),
		rnd:     utils.RandomInt,
	}
	for _, def := range sorted {
		e.total += def.GachaWeight
		e.entries = append(e.entries, entry{itemID: def.ID, cumulative: e.total})
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TotalWeight returns the sum of all positive weights
func (e *Engine) TotalWeight() int {
	return e.total
}

// DrawOne draws a single item. ok is false only when nothing can be drawn.
func (e *Engine) DrawOne() (itemID int, ok bool) {
	if e.total <= 0 {
		return 0, false
	}

	// r falls in [0, total); the winner is the first item whose cumulative
	// weight exceeds it, giving each item weight/total of the range.
	r := e.rnd(0, e.total-1)
	i := sort.Search(len(e.entries), func(i int) bool {
		return e.entries[i].cumulative > r
	})
	if i == len(e.entries) {
		return 0, false
	}
	return e.entries[i].itemID, true
}

// Draw performs n independent draws and returns the winning item ids in
// draw order. Misses are omitted, so the result may be shorter than n.
func (e *Engine) Draw(n int) []int {
	results := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		if id, ok := e.DrawOne(); ok {
			results = append(results, id)
		}
	}
	return results
}
