package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiringHas(t *testing.T) {
	c := NewExpiring[string]()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add("a", now.Add(time.Minute))
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("b"))

	now = now.Add(time.Minute)
	assert.False(t, c.Has("a"))
	assert.Zero(t, c.Len())
}

func TestExpiringKeepsLaterDeadline(t *testing.T) {
	c := NewExpiring[string]()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add("a", now.Add(time.Hour))
	c.Add("a", now.Add(time.Second))
	now = now.Add(time.Minute)
	assert.True(t, c.Has("a"))
}

func TestExpiringHasKeepsEntryExtendedDuringCheck(t *testing.T) {
	c := NewExpiring[string]()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.Add("a", start.Add(time.Second))

	later := start.Add(time.Minute)
	extended := false
	c.now = func() time.Time {
		// runs between the read and the write lock inside Has
		if !extended {
			extended = true
			c.Add("a", later.Add(time.Hour))
		}
		return later
	}

	assert.True(t, c.Has("a"))
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has("a"))
}

func TestExpiringSweep(t *testing.T) {
	c := NewExpiring[int]()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Add(1, now.Add(time.Second))
	c.Add(2, now.Add(time.Hour))
	c.Add(3, now.Add(-time.Second))

	now = now.Add(time.Minute)
	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has(2))
}

func TestExpiringConcurrent(t *testing.T) {
	c := NewExpiring[int]()
	exp := time.Now().Add(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add(i, exp)
			_ = c.Has(i)
			_ = c.Sweep()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}
