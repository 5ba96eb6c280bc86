// Package spawn owns the enemy pool and the spawner that fills it on a timer
// while ramping up difficulty.
package spawn

import (
	"fmt"

	"github.com/tomz197/arena/internal/object"
)

// Handle refers to a pooled enemy. It is valid only while that enemy stays
// allocated; once released, the handle goes stale and every use of it is a
// no-op.
type Handle struct {
	index      int
	generation uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

type slot struct {
	enemy      *object.Enemy
	generation uint32
	inUse      bool
}

// Pool is a free-list of reusable enemies with a soft cap on how many are
// live at once. The cap grows over time up to an absolute ceiling. Capacity
// grows on demand and never shrinks.
type Pool struct {
	slots    []slot
	free     []int // Stack of free slot indices
	live     int
	max      int
	absMax   int
	newEnemy func() *object.Enemy
}

// NewPool creates an empty pool. newEnemy allocates a fresh, inactive enemy
// when no slot is free.
func NewPool(maxConcurrent, absoluteMax int, newEnemy func() *object.Enemy) *Pool {
	if maxConcurrent < 0 || absoluteMax < maxConcurrent {
		panic(fmt.Sprintf("spawn: invalid caps %d/%d", maxConcurrent, absoluteMax))
	}
	return &Pool{
		max:      maxConcurrent,
		absMax:   absoluteMax,
		newEnemy: newEnemy,
	}
}

// Acquire takes an enemy out of the pool. It refuses when the soft cap is
// reached. The enemy is returned as-is; the caller activates it.
func (p *Pool) Acquire() (Handle, *object.Enemy, bool) {
	if p.live >= p.max {
		return Handle{}, nil, false
	}

	var idx int
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.slots = append(p.slots, slot{enemy: p.newEnemy()})
		idx = len(p.slots) - 1
	}

	s := &p.slots[idx]
	if s.inUse {
		panic(fmt.Sprintf("spawn: slot %d on free list while in use", idx))
	}
	s.inUse = true
	s.generation++
	p.live++
	p.check()
	return Handle{index: idx, generation: s.generation}, s.enemy, true
}

// Release returns the enemy behind h to the free list. Releasing a stale or
// zero handle does nothing and reports false.
func (p *Pool) Release(h Handle) bool {
	s, ok := p.slot(h)
	if !ok {
		return false
	}
	s.inUse = false
	p.free = append(p.free, h.index)
	p.live--
	p.check()
	return true
}

// Get returns the enemy behind a live handle.
func (p *Pool) Get(h Handle) (*object.Enemy, bool) {
	s, ok := p.slot(h)
	if !ok {
		return nil, false
	}
	return s.enemy, true
}

func (p *Pool) slot(h Handle) (*slot, bool) {
	if h.IsZero() || h.index < 0 || h.index >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.index]
	if !s.inUse || s.generation != h.generation {
		return nil, false
	}
	return s, true
}

// Raise lifts the soft cap by step, clamped to the absolute maximum, and
// returns the new cap.
func (p *Pool) Raise(step int) int {
	if step > 0 {
		p.max = min(p.max+step, p.absMax)
	}
	p.check()
	return p.max
}

// Each calls fn for every live enemy in slot order. fn may release the
// enemy it is given.
func (p *Pool) Each(fn func(h Handle, e *object.Enemy)) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.inUse {
			fn(Handle{index: i, generation: s.generation}, s.enemy)
		}
	}
}

// Live returns how many enemies are in use.
func (p *Pool) Live() int { return p.live }

// Max returns the current soft cap.
func (p *Pool) Max() int { return p.max }

// AbsoluteMax returns the ceiling of the soft cap.
func (p *Pool) AbsoluteMax() int { return p.absMax }

// Capacity returns how many enemies have ever been allocated.
func (p *Pool) Capacity() int { return len(p.slots) }

func (p *Pool) check() {
	if p.live < 0 || p.live > p.max || p.max > p.absMax {
		panic(fmt.Sprintf("spawn: pool invariant broken: live=%d max=%d absolute=%d", p.live, p.max, p.absMax))
	}
	if p.live+len(p.free) != len(p.slots) {
		panic(fmt.Sprintf("spawn: pool accounting broken: live=%d free=%d slots=%d", p.live, len(p.free), len(p.slots)))
	}
}
