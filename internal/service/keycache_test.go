// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCache_AddGet(t *testing.T) {
	cache := newKeyCache(4)

	cache.Add("conv-1", []byte("key-one"))

	key, ok := cache.Get("conv-1")
	require.True(t, ok)
	assert.Equal(t, []byte("key-one"), key)

	_, ok = cache.Get("conv-2")
	assert.False(t, ok)
}

func TestKeyCache_ReturnsCopies(t *testing.T) {
	cache := newKeyCache(4)
	original := []byte("key-one")
	cache.Add("conv-1", original)

	// Neither the caller's slice nor the returned one aliases the cache.
	original[0] = 'X'
	key, ok := cache.Get("conv-1")
	require.True(t, ok)
	assert.Equal(t, []byte("key-one"), key)

	key[0] = 'Y'
	again, _ := cache.Get("conv-1")
	assert.Equal(t, []byte("key-one"), again)
}

func TestKeyCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newKeyCache(3)
	for i := 1; i <= 3; i++ {
		cache.Add(fmt.Sprintf("conv-%d", i), []byte{byte(i)})
	}

	// Touch conv-1 so conv-2 becomes the eviction candidate.
	_, ok := cache.Get("conv-1")
	require.True(t, ok)

	cache.Add("conv-4", []byte{4})

	_, ok = cache.Get("conv-2")
	assert.False(t, ok)
	_, ok = cache.Get("conv-1")
	assert.True(t, ok)
	assert.Equal(t, 3, cache.Len())
}

func TestKeyCache_UpdateExistingEntry(t *testing.T) {
	cache := newKeyCache(2)
	cache.Add("conv-1", []byte("old"))
	cache.Add("conv-1", []byte("new"))

	key, ok := cache.Get("conv-1")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), key)
	assert.Equal(t, 1, cache.Len())
}

func TestKeyCache_Purge(t *testing.T) {
	cache := newKeyCache(4)
	cache.Add("conv-1", []byte("key-one"))
	cache.Add("conv-2", []byte("key-two"))

	cache.Purge()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("conv-1")
	assert.False(t, ok)
}
