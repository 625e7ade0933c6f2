package statgen_test

import (
	"fmt"
	"sync"
)

// scriptedRoller replays fixed dice results, one RollN call at a time.
type scriptedRoller struct {
	mu    sync.Mutex
	rolls [][]int
	err   error
	calls int
}

func newScriptedRoller(rolls ...[]int) *scriptedRoller {
	return &scriptedRoller{rolls: rolls}
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	got, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return got[0], nil
}

func (r *scriptedRoller) RollN(count, _ int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if len(r.rolls) == 0 {
		return nil, fmt.Errorf("scripted roller exhausted after %d calls", r.calls-1)
	}
	next := r.rolls[0]
	r.rolls = r.rolls[1:]
	if len(next) != count {
		return nil, fmt.Errorf("scripted roll has %d dice, %d requested", len(next), count)
	}
	return next, nil
}

// repeat returns n copies of roll.
func repeat(n int, roll []int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = roll
	}
	return out
}
