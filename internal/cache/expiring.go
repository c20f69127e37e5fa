package cache

import (
	"sync"
	"time"
)

// Expiring is a set whose members each carry their own deadline. Expired
// members are dropped lazily on lookup and in bulk by Sweep.
type Expiring[K comparable] struct {
	mu   sync.RWMutex
	data map[K]time.Time
	now  func() time.Time
}

func NewExpiring[K comparable]() *Expiring[K] {
	return &Expiring[K]{data: make(map[K]time.Time), now: time.Now}
}

// Add inserts k until exp. A later deadline for the same key wins.
func (c *Expiring[K]) Add(k K, exp time.Time) {
	c.mu.Lock()
	if cur, ok := c.data[k]; !ok || exp.After(cur) {
		c.data[k] = exp
	}
	c.mu.Unlock()
}

func (c *Expiring[K]) Has(k K) bool {
	c.mu.RLock()
	exp, ok := c.data[k]
	c.mu.RUnlock()
	if !ok {
		return false
	}
	if c.now().Before(exp) {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// An Add may have extended k since the read lock was released.
	if cur, ok := c.data[k]; ok && c.now().Before(cur) {
		return true
	}
	delete(c.data, k)
	return false
}

// Sweep drops every expired member and returns how many were removed.
func (c *Expiring[K]) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, exp := range c.data {
		if !now.Before(exp) {
			delete(c.data, k)
			n++
		}
	}
	return n
}

func (c *Expiring[K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
