package miners

import (
	"github.com/timtadh/assoc/lattice"
)

// Levels is the frequent-k-itemset table. A level, once created, only
// grows: the minimum support is fixed for the life of the table.
type Levels struct {
	maxK   int
	levels map[int]*Level
}

type Level struct {
	K    int
	keys []int32
	has  map[int32]bool
}

func NewLevels(maxK int) *Levels {
	return &Levels{
		maxK:   maxK,
		levels: make(map[int]*Level),
	}
}

func (l *Levels) MaxK() int {
	return l.maxK
}

func (l *Levels) Check(k int) error {
	if k <= 0 || k > l.maxK {
		return &lattice.OutOfRange{K: k, MaxK: l.maxK}
	}
	return nil
}

func (l *Levels) Has(k int) bool {
	_, has := l.levels[k]
	return has
}

// Built lists the levels present in the table.
func (l *Levels) Built() map[int]bool {
	built := make(map[int]bool, len(l.levels))
	for k := range l.levels {
		built[k] = true
	}
	return built
}

// Restore drops every level not named in built.
func (l *Levels) Restore(built map[int]bool) {
	for k := range l.levels {
		if !built[k] {
			delete(l.levels, k)
		}
	}
}

// Level returns level k creating it if needed.
func (l *Levels) Level(k int) *Level {
	if lvl, has := l.levels[k]; has {
		return lvl
	}
	lvl := &Level{
		K:    k,
		keys: make([]int32, 0, 10),
		has:  make(map[int32]bool),
	}
	l.levels[k] = lvl
	return lvl
}

// Add puts an itemset key in the level and reports whether it was new.
func (lvl *Level) Add(key int32) bool {
	if lvl.has[key] {
		return false
	}
	lvl.has[key] = true
	lvl.keys = append(lvl.keys, key)
	return true
}

func (lvl *Level) Has(key int32) bool {
	return lvl.has[key]
}

func (lvl *Level) Keys() []int32 {
	return lvl.keys
}

func (lvl *Level) Size() int {
	return len(lvl.keys)
}
