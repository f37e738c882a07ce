package genius

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = data
	m.ttls[key] = ttl
	return nil
}

func TestCachedCatalog_ServesRepeatFromStore(t *testing.T) {
	inner := &fakeCatalog{pages: map[string][]CatalogEntry{
		"a b": {song("A", "B", "url"), {Kind: "album", URL: "album"}},
	}}
	store := newMemoryStore()
	cached := NewCachedCatalog(inner, store, time.Hour)

	first, err := cached.Query(context.Background(), "a b")
	require.NoError(t, err)

	second, err := cached.Query(context.Background(), "a b")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached entries differ (-first +second):\n%s", diff)
	}
	require.Len(t, inner.queries, 1)
	require.Equal(t, time.Hour, store.ttls["lyrical:search:a b"])
}

func TestCachedCatalog_StoreFailuresFallThrough(t *testing.T) {
	captureLog(t)
	inner := &fakeCatalog{pages: map[string][]CatalogEntry{"a b": {song("A", "B", "url")}}}
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	store.setErr = errors.New("redis down")

	cached := NewCachedCatalog(inner, store, time.Minute)
	for i := 0; i < 2; i++ {
		entries, err := cached.Query(context.Background(), "a b")
		require.NoError(t, err)
		require.Len(t, entries, 1)
	}

	require.Len(t, inner.queries, 2)
}

func TestCachedCatalog_CorruptEntryRefetches(t *testing.T) {
	captureLog(t)
	inner := &fakeCatalog{pages: map[string][]CatalogEntry{"a b": {song("A", "B", "url")}}}
	store := newMemoryStore()
	store.data["lyrical:search:a b"] = []byte("{broken")

	entries, err := NewCachedCatalog(inner, store, time.Minute).Query(context.Background(), "a b")

	require.NoError(t, err)
	require.Equal(t, "url", entries[0].URL)
	require.Len(t, inner.queries, 1)
}

func TestCachedCatalog_InnerErrorNotCached(t *testing.T) {
	inner := &fakeCatalog{err: errors.New("offline")}
	store := newMemoryStore()

	_, err := NewCachedCatalog(inner, store, time.Minute).Query(context.Background(), "a b")

	require.Error(t, err)
	require.Empty(t, store.data)
}
