// Package equiv property-tests the quantified laws the core is supposed to
// satisfy (spec §8) by throwing random inputs at them instead of enumerating
// the full input space. Each law gets its own PCG-seeded chain so a failing
// run is reproducible from its seed alone.
package equiv

import (
	"fmt"
	"math/rand/v2"
)

// Law is one quantified property: Check draws whatever random inputs it
// needs from rng, exercises the core, and reports whether the property
// held. detail is filled in only on failure, for the counterexample report.
type Law struct {
	Name  string
	Check func(rng *rand.Rand) (ok bool, detail string)
}

// Violation records a single failing trial of a Law.
type Violation struct {
	Law    string
	Seed   uint64
	Trial  int
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: trial %d (seed %#x): %s", v.Law, v.Trial, v.Seed, v.Detail)
}

// Chain runs repeated trials of a single Law under one seeded RNG, the way
// an MCMC chain repeatedly samples from one seeded generator — except here
// every trial is independent rather than a mutation of the last, since a
// universally-quantified law has no "cost" to anneal toward, only pass or
// fail.
type Chain struct {
	law  Law
	rng  *rand.Rand
	seed uint64

	Checked    int
	Violations []Violation
}

// NewChain seeds a chain for law from seed, deriving the PCG's second
// stream parameter from the seed itself. The stream depends only on seed,
// so chains built from the same seed draw the same inputs; RunAll gives
// each law its own seed (base seed plus the law's index).
func NewChain(law Law, seed uint64) *Chain {
	return &Chain{
		law:  law,
		rng:  rand.New(rand.NewPCG(seed, seed^0xDEADBEEF)),
		seed: seed,
	}
}

// Run executes up to n trials, stopping early once maxViolations have been
// recorded (0 means collect all of them).
func (c *Chain) Run(n, maxViolations int) {
	for i := 0; i < n; i++ {
		c.Checked++
		ok, detail := c.law.Check(c.rng)
		if !ok {
			c.Violations = append(c.Violations, Violation{
				Law: c.law.Name, Seed: c.seed, Trial: i, Detail: detail,
			})
			if maxViolations > 0 && len(c.Violations) >= maxViolations {
				return
			}
		}
	}
}

// RunAll runs every law in laws for n trials each on its own chain seeded
// from seed, returning every chain that recorded at least one violation.
func RunAll(laws []Law, seed uint64, n int) []*Chain {
	var failed []*Chain
	for i, law := range laws {
		c := NewChain(law, seed+uint64(i))
		c.Run(n, 10)
		if len(c.Violations) > 0 {
			failed = append(failed, c)
		}
	}
	return failed
}
