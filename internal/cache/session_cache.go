package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"apnidisha/internal/model"
)

// SessionCache is the call-session store. Keys are Twilio call SIDs; a
// missing key returns (nil, nil). Implementations must be safe for
// concurrent use across different call SIDs.
type SessionCache interface {
	Get(ctx context.Context, callSID string) (*model.QuizSession, error)
	Set(ctx context.Context, session *model.QuizSession) error
	Delete(ctx context.Context, callSID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a Redis-backed session store. The TTL evicts
// sessions for calls that hung up and never sent another turn.
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    30 * time.Minute,
	}
}

func (c *sessionCache) key(callSID string) string {
	return "quiz:session:" + callSID
}

func (c *sessionCache) Get(ctx context.Context, callSID string) (*model.QuizSession, error) {
	data, err := c.client.Get(ctx, c.key(callSID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) Set(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.CallSID), data, c.ttl).Err()
}

func (c *sessionCache) Delete(ctx context.Context, callSID string) error {
	return c.client.Del(ctx, c.key(callSID)).Err()
}
