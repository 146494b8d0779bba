package identity_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/quick-node-clone/internal/platform/identity"
)

func TestGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := identity.New()
	seen := make(map[string]bool)
	for range 100 {
		id := gen.NewID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("NewID() = %q, not a UUID: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Errorf("NewID() version = %d, want 4", parsed.Version())
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestSequence_Concurrent(t *testing.T) {
	t.Parallel()

	seq := identity.NewSequence("c-")
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				id := seq.NewID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 400 {
		t.Errorf("unique ids = %d, want 400", len(seen))
	}
	if _, ok := seen["c-400"]; !ok {
		t.Error("missing c-400, sequence did not count contiguously")
	}
}
