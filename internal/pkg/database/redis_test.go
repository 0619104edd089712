package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisClient{Client: client}, mr
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	rc, _ := setupTestRedis(t)
	ctx := context.Background()

	err := rc.Set(ctx, "key", "value", 0)
	assert.NoError(t, err)

	got, err := rc.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", got)

	err = rc.Delete(ctx, "key")
	assert.NoError(t, err)

	_, err = rc.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_GeoAddAndPos(t *testing.T) {
	rc, _ := setupTestRedis(t)
	ctx := context.Background()

	err := rc.GeoAdd(ctx, "masters:geo", 69.240562, 41.311081, "master-1")
	assert.NoError(t, err)

	positions, err := rc.GeoPos(ctx, "masters:geo", "master-1", "master-2")
	assert.NoError(t, err)
	require.Len(t, positions, 2)

	require.NotNil(t, positions[0])
	assert.InDelta(t, 41.311081, positions[0].Latitude, 0.001)
	assert.InDelta(t, 69.240562, positions[0].Longitude, 0.001)

	// Unknown member has no position
	assert.Nil(t, positions[1])
}

func TestRedisClient_GeoRemove(t *testing.T) {
	rc, _ := setupTestRedis(t)
	ctx := context.Background()

	err := rc.GeoAdd(ctx, "masters:geo", 69.240562, 41.311081, "master-1")
	assert.NoError(t, err)

	err = rc.GeoRemove(ctx, "masters:geo", "master-1")
	assert.NoError(t, err)

	positions, err := rc.GeoPos(ctx, "masters:geo", "master-1")
	assert.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Nil(t, positions[0])
}
