// Package cache provides the response caches sitting in front of the
// transaction store.
package cache

import "time"

// Cache defines a generic cache interface
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
	Size() int
}

// Purger is a cache whose entire contents can be dropped at once.
// Ingest invalidation uses this after new transactions land.
type Purger interface {
	Purge()
}

// Cleaner interface for caches that support expiry sweeps
type Cleaner interface {
	CleanExpired() int
}

// Manager handles cache lifecycle, expiry sweeps and bulk invalidation.
type Manager struct {
	caches      []Cleaner
	purgers     []Purger
	stopCleanup chan struct{}
	cleanupDone chan struct{}
}

// NewManager creates a new cache manager
func NewManager() *Manager {
	return &Manager{
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
}

// Register adds a cache to the manager. Caches that also implement
// Purger take part in PurgeAll.
func (m *Manager) Register(cache Cleaner) {
	m.caches = append(m.caches, cache)
	if p, ok := cache.(Purger); ok {
		m.purgers = append(m.purgers, p)
	}
}

// PurgeAll empties every registered purgeable cache.
func (m *Manager) PurgeAll() {
	for _, p := range m.purgers {
		p.Purge()
	}
}

// StartCleanup begins periodic cleanup of all registered caches
func (m *Manager) StartCleanup(interval time.Duration) {
	go m.cleanup(interval)
}

func (m *Manager) cleanup(interval time.Duration) {
	defer close(m.cleanupDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, cache := range m.caches {
				cache.CleanExpired()
			}
		case <-m.stopCleanup:
			return
		}
	}
}

// Stop gracefully stops the cleanup routine
func (m *Manager) Stop() {
	if m.stopCleanup != nil {
		close(m.stopCleanup)
		<-m.cleanupDone
	}
}
