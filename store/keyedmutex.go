package store

import "sync"

// KeyedMutex serializes operations that share a logical key while leaving
// operations on distinct keys fully parallel. Every multi-step remote
// sequence (delete-then-upload, read-modify-write) must run under the lock
// for its key; the remote stores offer no locking of their own.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock func. Callers must
// release on every exit path, including failures.
func (km *KeyedMutex) Lock(key string) func() {
	km.mu.Lock()
	l, ok := km.locks[key]
	if !ok {
		l = &sync.Mutex{}
		km.locks[key] = l
	}
	km.mu.Unlock()

	l.Lock()
	return l.Unlock
}
