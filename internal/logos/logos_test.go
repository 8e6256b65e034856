package logos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	store, err := NewSqliteStore(filepath.Join(t.TempDir(), "logos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	missing, err := store.Get("NFL:KC")
	require.NoError(t, err)
	assert.Nil(t, missing)

	want := &Logo{
		Key:       "NFL:KC",
		URL:       "https://cdn/kc.png",
		PNG:       []byte{0x89, 'P', 'N', 'G'},
		FetchedAt: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put(want))

	got, err := store.Get("NFL:KC")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.PNG, got.PNG)
	assert.True(t, want.FetchedAt.Equal(got.FetchedAt))

	// upsert replaces
	want.PNG = []byte{1, 2, 3}
	require.NoError(t, store.Put(want))
	got, err = store.Get("NFL:KC")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.PNG)
}

func TestCacheDownloadsOncePerKey(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewCache(newTestStore(t))

	for i := 0; i < 3; i++ {
		png, err := c.Get(context.Background(), "nfl", "KC", srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), png)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheRefreshesAfterTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	store := newTestStore(t)
	c := NewCache(store)

	_, err := c.Get(context.Background(), "nfl", "KC", srv.URL)
	require.NoError(t, err)

	// a second cache instance (fresh process) two hours later refetches
	c2 := NewCache(store)
	c2.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = c2.Get(context.Background(), "nfl", "KC", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheFallsBackToExpiredStoredCopyOnFetchError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(&Logo{
		Key:       Key("nfl", "KC"),
		URL:       "https://cdn/kc.png",
		PNG:       []byte("old-png"),
		FetchedAt: time.Now().Add(-48 * time.Hour),
	}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewCache(store)
	png, err := c.Get(context.Background(), "nfl", "KC", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("old-png"), png)
}

func TestCacheEmptyURLIsNoop(t *testing.T) {
	c := NewCache(nil)
	png, err := c.Get(context.Background(), "nfl", "KC", "")
	assert.NoError(t, err)
	assert.Nil(t, png)
}
