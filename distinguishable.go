package chroma

import (
	"fmt"
	"math"
)

// DistinguishableColors selects n colors that are mutually easy to tell
// apart. Candidates come from a discretized LCHab grid (the outer
// product of the lightness, chroma and hue choices, 15x15x20 by
// default) converted to sRGB. Seed colors are accepted into the result
// unconditionally and count toward n; with no seeds the first candidate
// seeds the set.
//
// Selection is a greedy farthest-point sweep: each step picks the
// candidate whose minimum CIEDE2000 distance to every already-chosen
// color is largest, ties broken by candidate order. This maximizes the
// worst-case pairwise distinguishability step by step; it is a
// deliberate efficiency/quality tradeoff, not a global optimum. Cost is
// O(n * pool) distance evaluations.
//
// Requesting more colors than the candidate pool holds is a usage
// error: the function returns it explicitly rather than truncating or
// refining the grid.
func DistinguishableColors(n int, seeds []Color, opts ...SelectorOption) ([]RGB, error) {
	if n < 0 {
		return nil, fmt.Errorf("chroma: distinguishable colors: negative count %d", n)
	}
	o := defaultSelectorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	chosen := make([]RGB, 0, n)
	for _, s := range seeds {
		if len(chosen) == n {
			break
		}
		chosen = append(chosen, ToRGB(s))
	}
	if len(chosen) == n {
		return chosen, nil
	}

	poolSize := len(o.lchoices) * len(o.cchoices) * len(o.hchoices)
	if n-len(chosen) > poolSize {
		return nil, fmt.Errorf("chroma: distinguishable colors: %d colors requested but the candidate grid holds only %d", n, poolSize)
	}

	Logger().Debug("distinguishable color selection",
		"n", n, "seeds", len(seeds), "pool", poolSize)

	pool := make([]RGB, 0, poolSize)
	poolT := make([]Color, 0, poolSize)
	for _, h := range o.hchoices {
		for _, c := range o.cchoices {
			for _, l := range o.lchoices {
				rgb := ToRGB(LCHab{L: l, C: c, H: h})
				pool = append(pool, rgb)
				poolT = append(poolT, transformed(rgb, o.transform))
			}
		}
	}

	// nearest[i] tracks candidate i's distance to the closest chosen
	// color. Each selection only ever lowers entries, never raises
	// them, so the table is updated incrementally.
	nearest := make([]float64, poolSize)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	lower := func(c Color) {
		for i, cand := range poolT {
			if d := ColorDiff(c, cand, o.metric); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	if len(chosen) == 0 {
		chosen = append(chosen, pool[0])
	}
	for _, c := range chosen {
		lower(transformed(c, o.transform))
	}

	for len(chosen) < n {
		best := 0
		for i, d := range nearest {
			if d > nearest[best] {
				best = i
			}
		}
		chosen = append(chosen, pool[best])
		lower(poolT[best])
	}
	return chosen, nil
}

func transformed(c Color, f func(Color) Color) Color {
	if f == nil {
		return c
	}
	return f(c)
}
