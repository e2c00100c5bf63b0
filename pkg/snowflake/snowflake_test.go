package snowflake

import (
	"sync"
	"testing"
)

func TestGenActionID(t *testing.T) {
	id := GenActionID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenActionID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 2000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, goroutines*perRoutine)
		dup int64
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenActionID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					dup = id
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if dup != 0 {
		t.Fatalf("duplicate id found in concurrent test: %d", dup)
	}
}

func TestGenActionID_Order(t *testing.T) {
	prev := GenActionID()
	for i := 0; i < 1000; i++ {
		curr := GenActionID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestSetNode_OutOfRange(t *testing.T) {
	if err := SetNode(4096); err == nil {
		t.Fatal("expected error for node id out of range")
	}
}
