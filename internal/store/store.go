// ABOUTME: In-memory conversation store keyed by conversation id
// ABOUTME: Process-local and unpersisted; a restart drops all conversations
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sable/inquiry/internal/models"
)

// entry pairs a message log with the time it was last touched, so the
// optional janitor can evict idle conversations.
type entry struct {
	log     []models.Message
	touched time.Time
}

// ConversationStore maps conversation ids to message logs. The mutex
// protects map integrity only; two concurrent continues for the same id
// may still interleave read-modify-write, and the later Replace wins.
// That last-write-wins behavior is deliberate.
type ConversationStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

// NewConversationStore creates an empty store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Put stores a message log under id, creating or overwriting the entry.
func (s *ConversationStore) Put(id string, msgs []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry{log: models.CloneLog(msgs), touched: s.now()}
}

// Get returns a private copy of the log for id. The copy means callers
// can append freely; a failed turn never corrupts the stored version.
func (s *ConversationStore) Get(id string) ([]models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return models.CloneLog(e.log), true
}

// Replace overwrites the log for id only if the entry still exists.
// Returns false when the conversation was deleted in the meantime
// (e.g. a concurrent terminal turn); that is not an error.
func (s *ConversationStore) Replace(id string, msgs []models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	s.entries[id] = &entry{log: models.CloneLog(msgs), touched: s.now()}
	return true
}

// Delete removes the entry for id. Idempotent: deleting an absent id is
// a no-op, and the return value reports whether anything was removed.
func (s *ConversationStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

// Len returns the number of live conversations
func (s *ConversationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// evictIdle removes entries untouched for longer than ttl and returns
// how many were removed. A zero or negative ttl evicts nothing.
func (s *ConversationStore) evictIdle(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps idle conversations every interval until ctx is
// canceled. With ttl <= 0 the store is unbounded (abandoned
// conversations live until process exit), matching the default.
func (s *ConversationStore) StartJanitor(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.evictIdle(ttl); n > 0 {
					log.Printf("evicted %d idle conversation(s)", n)
				}
			}
		}
	}()
}
