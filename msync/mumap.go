package msync

import "sync"

type MuMap[K comparable, T any] struct {
	mu   sync.Mutex
	data map[K]T
}

func NewMuMap[K comparable, T any]() *MuMap[K, T] {
	return &MuMap[K, T]{data: make(map[K]T)}
}

func (mm *MuMap[K, T]) Get(key K) (T, bool) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	value, ok := mm.data[key]
	return value, ok
}

// GetOrCreate returns the value stored under key, calling create and storing
// its result when the key is absent. create runs under the lock.
func (mm *MuMap[K, T]) GetOrCreate(key K, create func() T) T {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if value, ok := mm.data[key]; ok {
		return value
	}
	value := create()
	mm.data[key] = value
	return value
}

func (mm *MuMap[K, T]) Len() int {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	return len(mm.data)
}
