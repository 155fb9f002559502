//go:build unit

package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"carestay/internal/infra/cache"
	"carestay/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store with a manually advanced clock so TTL
// expiry can be asserted without sleeping.
type fakeStore struct {
	mu       sync.Mutex
	data     map[string]string
	ttls     map[string]time.Duration
	expiries map[string]time.Time
	now      time.Time
	down     bool
	writes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:     make(map[string]string),
		ttls:     make(map[string]time.Duration),
		expiries: make(map[string]time.Time),
		now:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return "", false
	}
	if f.expired(key) {
		f.evict(key)
		return "", false
	}
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeStore) Set(_ context.Context, key, value string, ttl time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return false
	}
	f.data[key] = value
	f.ttls[key] = ttl
	f.expiries[key] = f.now.Add(ttl)
	f.writes++
	return true
}

func (f *fakeStore) Delete(_ context.Context, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return false
	}
	f.evict(key)
	return true
}

func (f *fakeStore) Exists(_ context.Context, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return false
	}
	if f.expired(key) {
		f.evict(key)
		return false
	}
	_, ok := f.data[key]
	return ok
}

func (f *fakeStore) expired(key string) bool {
	exp, ok := f.expiries[key]
	return ok && f.now.After(exp)
}

func (f *fakeStore) evict(key string) {
	delete(f.data, key)
	delete(f.ttls, key)
	delete(f.expiries, key)
}

func (f *fakeStore) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeStore) Ready() bool { return !f.down }

func (f *fakeStore) ttlOf(key string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ttls[key]
}

func (f *fakeStore) put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

func (f *fakeStore) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

var testCacheConfig = config.CacheConfig{
	DefaultTTL:   time.Hour,
	SessionTTL:   24 * time.Hour,
	SearchTTL:    5 * time.Minute,
	DashboardTTL: 30 * time.Minute,
	SettingsTTL:  2 * time.Hour,
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newServiceWithStore() (*cache.Service, *fakeStore) {
	store := newFakeStore()
	return cache.NewService(store, testCacheConfig), store
}

func TestServiceGetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc, _ := newServiceWithStore()
		require.True(t, svc.Set(ctx, "k", payload{Name: "a", Count: 2}, time.Minute))

		var got payload
		require.True(t, svc.Get(ctx, "k", &got))
		assert.Equal(t, payload{Name: "a", Count: 2}, got)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		svc, _ := newServiceWithStore()
		var got payload
		assert.False(t, svc.Get(ctx, "missing", &got))
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		svc, store := newServiceWithStore()
		require.True(t, svc.Set(ctx, "k", payload{}, 0))
		assert.Equal(t, testCacheConfig.DefaultTTL, store.ttlOf("k"))
	})

	t.Run("expired entry reads as a miss", func(t *testing.T) {
		svc, store := newServiceWithStore()
		require.True(t, svc.Set(ctx, "k", payload{Name: "a"}, time.Minute))

		var got payload
		require.True(t, svc.Get(ctx, "k", &got))

		store.advance(time.Minute + time.Second)
		assert.False(t, svc.Get(ctx, "k", &got))
		assert.False(t, svc.Exists(ctx, "k"))
	})

	t.Run("undecodable payload is dropped and reported as miss", func(t *testing.T) {
		svc, store := newServiceWithStore()
		store.put("k", "{broken json")

		var got payload
		assert.False(t, svc.Get(ctx, "k", &got))
		assert.False(t, store.has("k"), "corrupt entry should be deleted")
	})

	t.Run("down store degrades to misses", func(t *testing.T) {
		svc, store := newServiceWithStore()
		store.down = true

		assert.False(t, svc.Set(ctx, "k", payload{}, time.Minute))
		var got payload
		assert.False(t, svc.Get(ctx, "k", &got))
		assert.False(t, svc.Exists(ctx, "k"))
	})
}

func TestServiceDomainHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("nursing home uses search ttl", func(t *testing.T) {
		svc, store := newServiceWithStore()
		homeID := uuid.New()
		require.True(t, svc.CacheNursingHome(ctx, homeID, payload{Name: "home"}))
		assert.Equal(t, testCacheConfig.SearchTTL, store.ttlOf("home:"+homeID.String()))

		var got payload
		require.True(t, svc.GetNursingHome(ctx, homeID, &got))
		assert.Equal(t, "home", got.Name)

		require.True(t, svc.InvalidateNursingHome(ctx, homeID))
		assert.False(t, svc.GetNursingHome(ctx, homeID, &got))
	})

	t.Run("session uses session ttl", func(t *testing.T) {
		svc, store := newServiceWithStore()
		userID := uuid.New()
		require.True(t, svc.CacheUserSession(ctx, userID, payload{Name: "session"}))
		assert.Equal(t, testCacheConfig.SessionTTL, store.ttlOf("session:"+userID.String()))
	})

	t.Run("settings and tax rates share settings ttl", func(t *testing.T) {
		svc, store := newServiceWithStore()
		require.True(t, svc.CacheCompanySettings(ctx, payload{Name: "settings"}))
		require.True(t, svc.CacheTaxRates(ctx, []payload{{Name: "standard"}}))
		assert.Equal(t, testCacheConfig.SettingsTTL, store.ttlOf("company:settings"))
		assert.Equal(t, testCacheConfig.SettingsTTL, store.ttlOf("tax:rates"))
	})
}

func TestInvalidateUserData(t *testing.T) {
	ctx := context.Background()
	svc, store := newServiceWithStore()
	userID := uuid.New()
	otherID := uuid.New()

	require.True(t, svc.CacheUserSession(ctx, userID, payload{Name: "session"}))
	require.True(t, svc.CacheDashboardStats(ctx, userID, payload{Name: "stats"}))
	require.True(t, svc.CacheUserSession(ctx, otherID, payload{Name: "other"}))

	svc.InvalidateUserData(ctx, userID)

	assert.False(t, store.has("session:"+userID.String()))
	assert.False(t, store.has("dashboard:stats:"+userID.String()))
	assert.True(t, store.has("session:"+otherID.String()), "other users must be untouched")
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy store", func(t *testing.T) {
		svc, store := newServiceWithStore()
		assert.True(t, svc.HealthCheck(ctx))
		assert.False(t, store.has("health:check"), "probe key should be cleaned up")
	})

	t.Run("down store", func(t *testing.T) {
		svc, store := newServiceWithStore()
		store.down = true
		assert.False(t, svc.HealthCheck(ctx))
	})
}
