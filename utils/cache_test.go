package utils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return mr
}

func TestCacheRoundTrip(t *testing.T) {
	useMiniredis(t)

	CacheSetBytes("cache:test:key", []byte("hello"), time.Minute)
	b, ok := CacheGetBytes("cache:test:key")
	require.True(t, ok)
	assert.Equal(t, "hello", string(b))

	_, ok = CacheGetBytes("cache:test:missing")
	assert.False(t, ok)
}

func TestCacheEnvelopeShape(t *testing.T) {
	useMiniredis(t)

	CacheEnvelope("cache:test:env", []string{"a", "b"}, time.Minute)
	b, ok := CacheGetBytes("cache:test:env")
	require.True(t, ok)
	assert.JSONEq(t, `{"code":0,"message":"success","data":["a","b"]}`, string(b))
}

func TestInvalidateByPrefix(t *testing.T) {
	useMiniredis(t)

	CacheSetBytes("cache:posts:list", []byte("1"), time.Minute)
	CacheSetBytes("cache:posts:slug:a", []byte("2"), time.Minute)
	CacheSetBytes("cache:categories:list", []byte("3"), time.Minute)

	InvalidateByPrefix("cache:posts:")

	_, ok := CacheGetBytes("cache:posts:list")
	assert.False(t, ok)
	_, ok = CacheGetBytes("cache:posts:slug:a")
	assert.False(t, ok)
	_, ok = CacheGetBytes("cache:categories:list")
	assert.True(t, ok, "other prefixes survive")
}

func TestTokenBlacklist(t *testing.T) {
	useMiniredis(t)

	assert.False(t, IsTokenBlacklisted("tok-1"))
	BlacklistToken("tok-1", time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted("tok-1"))
	assert.False(t, IsTokenBlacklisted("tok-2"))
}
