package harness

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds enough state to resume a long-running suite: which cases
// have already reported a result, so a restarted run can skip them.
type Checkpoint struct {
	Results   []Result
	Completed int // number of cases fully run
	Total     int // total number of cases in the suite
}

func init() {
	gob.Register(Result{})
}

// SaveCheckpoint writes suite state to path.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads suite state from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}

// CompletedSet returns the case names already present in the checkpoint, so
// a resumed run can filter them out of the case list before dispatching.
func (c *Checkpoint) CompletedSet() map[string]bool {
	done := make(map[string]bool, len(c.Results))
	for _, r := range c.Results {
		done[r.Case] = true
	}
	return done
}
