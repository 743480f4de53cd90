package keymutex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	km := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock(1)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock(2)
		unlockB()
		close(done)
	}()

	<-done
}

func TestKeyMutex_UnlockIdempotent(t *testing.T) {
	km := New()

	unlock := km.Lock(1)
	unlock()
	assert.NotPanics(t, unlock)

	unlock2 := km.Lock(1)
	unlock2()
}

func TestKeyMutex_EntriesReleased(t *testing.T) {
	km := New()

	for key := 0; key < 100; key++ {
		unlock := km.Lock(key)
		unlock()
	}

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
