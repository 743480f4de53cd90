// Package keymutex provides mutual exclusion scoped to a single key.
// Callers for different keys never block each other.
package keymutex

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyMutex struct {
	mu    sync.Mutex
	locks map[int]*entry
}

func New() *KeyMutex {
	return &KeyMutex{
		locks: make(map[int]*entry),
	}
}

// Lock blocks until the key is exclusively held and returns the unlock
// function. Entries are reference-counted so the table does not grow with
// the number of distinct keys ever seen.
func (k *KeyMutex) Lock(key int) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.locks, key)
			}
			k.mu.Unlock()
		})
	}
}
