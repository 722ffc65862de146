package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnidisha/internal/model"
)

func TestMemorySessionCacheRoundTrip(t *testing.T) {
	c := NewMemorySessionCache(0)
	ctx := context.Background()

	session := model.NewQuizSession("CA123")
	session.Answers = append(session.Answers, model.Answer{
		Trait: model.TraitRealistic, Question: "q", Rating: 4,
	})
	require.NoError(t, c.Set(ctx, session))

	got, err := c.Get(ctx, "CA123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CA123", got.CallSID)
	assert.Equal(t, model.PhaseStatic, got.Phase)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, 4, got.Answers[0].Rating)
}

func TestMemorySessionCacheMiss(t *testing.T) {
	c := NewMemorySessionCache(0)

	got, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionCacheDelete(t *testing.T) {
	c := NewMemorySessionCache(0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, model.NewQuizSession("CA456")))
	require.NoError(t, c.Delete(ctx, "CA456"))

	got, err := c.Get(ctx, "CA456")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionCacheExpiry(t *testing.T) {
	c := NewMemorySessionCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, model.NewQuizSession("CA789")))
	time.Sleep(25 * time.Millisecond)

	got, err := c.Get(ctx, "CA789")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionCacheReturnsCopies(t *testing.T) {
	c := NewMemorySessionCache(0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, model.NewQuizSession("CA111")))

	first, err := c.Get(ctx, "CA111")
	require.NoError(t, err)
	first.Phase = model.PhaseRefinement

	second, err := c.Get(ctx, "CA111")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseStatic, second.Phase, "mutating one copy must not leak into the store")
}

func TestMemorySessionCacheConcurrent(t *testing.T) {
	c := NewMemorySessionCache(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("CA%03d", i)
			_ = c.Set(ctx, model.NewQuizSession(sid))
			got, err := c.Get(ctx, sid)
			assert.NoError(t, err)
			assert.NotNil(t, got)
		}(i)
	}
	wg.Wait()
}
