package services

import (
	"sync"
	"testing"
)

func TestUserLocks_SerializesSameUser(t *testing.T) {
	locks := newUserLocks()
	var (
		wg      sync.WaitGroup
		active  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("u1")
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("expected at most one holder at a time, saw %d", maxSeen)
	}
	if locks.size() != 0 {
		t.Errorf("expected idle entries to be dropped, %d left", locks.size())
	}
}

func TestUserLocks_IndependentUsers(t *testing.T) {
	locks := newUserLocks()

	unlockA := locks.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("b")
		unlock()
		close(done)
	}()
	<-done
	unlockA()
}
