package equiv

import "testing"

// TestAllLawsHoldUnderFuzzing runs every law for a modest number of trials
// and fails loudly, with the recorded counterexample, on any violation.
func TestAllLawsHoldUnderFuzzing(t *testing.T) {
	const trials = 2000
	const seed = 1

	for i, law := range Laws {
		c := NewChain(law, seed+uint64(i))
		c.Run(trials, 5)
		if len(c.Violations) > 0 {
			t.Errorf("law %q: %d/%d trials violated, first: %s", law.Name, len(c.Violations), c.Checked, c.Violations[0])
		}
	}
}

func TestRunAllReportsNoFailingChains(t *testing.T) {
	failed := RunAll(Laws, 42, 1000)
	for _, c := range failed {
		t.Errorf("law %q failed %d/%d trials, first: %s", c.law.Name, len(c.Violations), c.Checked, c.Violations[0])
	}
}
