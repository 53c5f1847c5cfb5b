package account

import (
	"sort"
	"sync"
)

// lockManager serializes operations per account. Multi-account
// operations acquire their locks in account-number order, so two
// transfers over the same pair in opposite directions cannot deadlock.
type lockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockManager() *lockManager {
	return &lockManager{locks: make(map[string]*sync.Mutex)}
}

func (m *lockManager) get(number string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[number]
	if !ok {
		l = &sync.Mutex{}
		m.locks[number] = l
	}
	return l
}

// acquire locks the given account numbers in total order and returns a
// release function that unlocks them in reverse.
func (m *lockManager) acquire(numbers ...string) func() {
	sorted := make([]string, 0, len(numbers))
	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			sorted = append(sorted, n)
		}
	}
	sort.Strings(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, n := range sorted {
		l := m.get(n)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
