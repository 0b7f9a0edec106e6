package fsstore

import "sync"

// CategoryLocks serializes multi-step filesystem sequences per
// category. Uploads re-count the directory to assign the next filename,
// so two concurrent uploads could claim the same number; holding the
// category lock across count-then-write (and delete-then-cascade)
// removes that race for the single-process deployment this system
// assumes.
type CategoryLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCategoryLocks() *CategoryLocks {
	return &CategoryLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the named category's lock and returns its unlock func.
func (c *CategoryLocks) Lock(name string) func() {
	c.mu.Lock()
	l, ok := c.locks[name]
	if !ok {
		l = &sync.Mutex{}
		c.locks[name] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
