package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"apnidisha/internal/model"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memorySessionCache is an in-process SessionCache for dev and tests.
// Sessions are stored marshalled so callers get an independent copy each
// turn, same as the Redis implementation.
type memorySessionCache struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

// NewMemorySessionCache creates an in-memory session store. ttl <= 0
// disables expiry.
func NewMemorySessionCache(ttl time.Duration) SessionCache {
	return &memorySessionCache{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
}

func (c *memorySessionCache) Get(_ context.Context, callSID string) (*model.QuizSession, error) {
	c.mu.RLock()
	entry, ok := c.sessions[callSID]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.sessions, callSID)
		c.mu.Unlock()
		return nil, nil
	}

	var session model.QuizSession
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memorySessionCache) Set(_ context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	entry := memoryEntry{data: data}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.sessions[session.CallSID] = entry
	c.mu.Unlock()
	return nil
}

func (c *memorySessionCache) Delete(_ context.Context, callSID string) error {
	c.mu.Lock()
	delete(c.sessions, callSID)
	c.mu.Unlock()
	return nil
}
