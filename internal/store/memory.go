package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// memoryItem holds the value and expiration timestamp for a key.
type memoryItem struct {
	value     []byte
	expiresAt int64 // Unix-nano timestamp. 0 for no expiry.
}

// MemoryStore is an in-memory key-value store that is safe for concurrent
// use. It is the default backend when no Redis DSN and no database DSN are
// configured.
type MemoryStore struct {
	mu          sync.RWMutex
	data        map[string]memoryItem
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewMemoryStore creates and returns a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		data:        make(map[string]memoryItem),
		stopCleanup: make(chan struct{}),
	}
	// Periodically drop expired items so keys that are never read again do
	// not accumulate.
	go s.cleanupExpiredItems()
	return s
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// Set stores a key-value pair.
func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().UnixNano() + ttl.Nanoseconds()
	}

	// Copy the value so callers can reuse their buffer.
	stored := make([]byte, len(value))
	copy(stored, value)

	s.data[key] = memoryItem{
		value:     stored,
		expiresAt: expiresAt,
	}
	return nil
}

// Get retrieves a value by its key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	item, exists := s.data[key]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	if item.expiresAt > 0 && time.Now().UnixNano() > item.expiresAt {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return item.value, nil
}

// Delete removes a value by its key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Del removes multiple values by their keys.
func (s *MemoryStore) Del(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

// Exists checks if a key exists.
func (s *MemoryStore) Exists(key string) (bool, error) {
	s.mu.RLock()
	item, exists := s.data[key]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}
	if item.expiresAt > 0 && time.Now().UnixNano() > item.expiresAt {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Clear removes all data.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]memoryItem)
	return nil
}

// cleanupExpiredItems periodically removes expired items from the store.
// Runs every 5 minutes to balance memory usage and CPU overhead.
func (s *MemoryStore) cleanupExpiredItems() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.performCleanup()
		case <-s.stopCleanup:
			logrus.Debug("MemoryStore cleanup goroutine stopped")
			return
		}
	}
}

// performCleanup scans the store and removes expired items.
func (s *MemoryStore) performCleanup() {
	now := time.Now().UnixNano()

	s.mu.RLock()
	expiredKeys := make([]string, 0, 16)
	for key, item := range s.data {
		if item.expiresAt > 0 && now > item.expiresAt {
			expiredKeys = append(expiredKeys, key)
		}
	}
	s.mu.RUnlock()

	if len(expiredKeys) == 0 {
		return
	}

	deleted := 0
	s.mu.Lock()
	for _, key := range expiredKeys {
		// Re-check under the write lock; the key may have been rewritten.
		if item, exists := s.data[key]; exists && item.expiresAt > 0 && now > item.expiresAt {
			delete(s.data, key)
			deleted++
		}
	}
	s.mu.Unlock()

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("MemoryStore cleanup: removed %d expired items", deleted)
	}
}
