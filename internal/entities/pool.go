package entities

import "github.com/KirkDiggler/rpg-statgen/internal/errors"

// PoolSize is the number of candidates in a best-three-of-four pool.
const PoolSize = 6

// PoolEntry is one rolled candidate. Dice holds the kept dice and Dropped the
// discarded ones; both are empty for values that were not rolled here.
type PoolEntry struct {
	Value   int   `json:"value"`
	Dice    []int `json:"dice,omitempty"`
	Dropped []int `json:"dropped,omitempty"`
}

// RolledPool is an ordered list of candidates waiting to be assigned.
type RolledPool []PoolEntry

// NewRolledPool builds a pool from bare values.
func NewRolledPool(values ...int) RolledPool {
	pool := make(RolledPool, len(values))
	for i, v := range values {
		pool[i] = PoolEntry{Value: v}
	}
	return pool
}

// Values returns the candidate values in position order.
func (p RolledPool) Values() []int {
	out := make([]int, len(p))
	for i, e := range p {
		out[i] = e.Value
	}
	return out
}

// Clone returns a deep copy.
func (p RolledPool) Clone() RolledPool {
	if p == nil {
		return nil
	}
	out := make(RolledPool, len(p))
	for i, e := range p {
		out[i] = PoolEntry{
			Value:   e.Value,
			Dice:    append([]int(nil), e.Dice...),
			Dropped: append([]int(nil), e.Dropped...),
		}
	}
	return out
}

// Validate checks the pool has PoolSize entries, each a legal score.
func (p RolledPool) Validate() error {
	if len(p) != PoolSize {
		return errors.InvalidArgumentf("pool must have %d entries, got %d", PoolSize, len(p))
	}
	for i, e := range p {
		if e.Value < MinScore || e.Value > MaxScore {
			return errors.InvalidArgumentf("pool entry %d has value %d outside [%d,%d]", i, e.Value, MinScore, MaxScore)
		}
	}
	return nil
}
