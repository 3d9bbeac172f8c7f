package question

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the two commands the cache issues. Any other call
// panics on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestCacheRoundTrip(t *testing.T) {
	client := &fakeRedis{data: map[string]string{}}
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "miss is a nil map")

	require.NoError(t, cache.Set(ctx, CategoryMap{1: "Science", 6: "Sports"}))
	assert.JSONEq(t, `{"1":"Science","6":"Sports"}`, client.data[categoryCacheKey])
	assert.Equal(t, time.Minute, client.ttl)

	got, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, CategoryMap{1: "Science", 6: "Sports"}, got)
}

func TestCacheDefaultTTL(t *testing.T) {
	client := &fakeRedis{data: map[string]string{}}
	require.NoError(t, NewCache(client, 0).Set(context.Background(), CategoryMap{}))
	assert.Equal(t, defaultCacheTTL, client.ttl)
}

func TestCacheErrors(t *testing.T) {
	client := &fakeRedis{data: map[string]string{categoryCacheKey: "not json"}}
	_, err := NewCache(client, 0).Get(context.Background())
	assert.Error(t, err)

	client = &fakeRedis{getErr: errors.New("i/o timeout")}
	_, err = NewCache(client, 0).Get(context.Background())
	assert.Error(t, err)
}
