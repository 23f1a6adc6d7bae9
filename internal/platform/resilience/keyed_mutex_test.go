package resilience

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	var m KeyedMutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock("match-1")
			defer m.Unlock("match-1")
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("unexpected counter: got=%d want=50", counter)
	}
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	var m KeyedMutex
	m.Lock("match-1")
	defer m.Unlock("match-1")

	done := make(chan struct{})
	go func() {
		m.Lock("match-2")
		m.Unlock("match-2")
		close(done)
	}()

	<-done
}
