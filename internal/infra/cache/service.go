package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"carestay/internal/pkg/config"

	"github.com/google/uuid"
)

// Key namespaces. One fixed prefix per cached domain.
const (
	homeKeyPrefix      = "home:"
	searchKeyPrefix    = "search:"
	sessionKeyPrefix   = "session:"
	dashboardKeyPrefix = "dashboard:stats:"
	companySettingsKey = "company:settings"
	taxRatesKey        = "tax:rates"
	healthCheckKey     = "health:check"
)

// Service is a cache-aside layer over a Store. It is never a hard
// dependency: a missing or down store turns every read into a miss and
// every write into a no-op.
type Service struct {
	store Store
	cfg   config.CacheConfig
}

func NewService(store Store, cfg config.CacheConfig) *Service {
	return &Service{store: store, cfg: cfg}
}

// Get unmarshals the cached JSON value into dest. False means miss,
// disabled store, or undecodable payload.
func (s *Service) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("failed to decode cached value", "key", key, "error", err.Error())
		s.store.Delete(ctx, key)
		return false
	}
	return true
}

// Set stores value as JSON. A zero ttl applies the configured default.
func (s *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("failed to encode value for cache", "key", key, "error", err.Error())
		return false
	}
	return s.store.Set(ctx, key, string(raw), ttl)
}

func (s *Service) Delete(ctx context.Context, key string) bool {
	return s.store.Delete(ctx, key)
}

func (s *Service) Exists(ctx context.Context, key string) bool {
	return s.store.Exists(ctx, key)
}

// ---------------------------------------------------------------------------
// Domain helpers: fixed prefixes, per-domain TTLs
// ---------------------------------------------------------------------------

func (s *Service) CacheNursingHome(ctx context.Context, homeID uuid.UUID, home any) bool {
	return s.Set(ctx, homeKeyPrefix+homeID.String(), home, s.cfg.SearchTTL)
}

func (s *Service) GetNursingHome(ctx context.Context, homeID uuid.UUID, dest any) bool {
	return s.Get(ctx, homeKeyPrefix+homeID.String(), dest)
}

func (s *Service) InvalidateNursingHome(ctx context.Context, homeID uuid.UUID) bool {
	return s.Delete(ctx, homeKeyPrefix+homeID.String())
}

func (s *Service) CacheSearchResults(ctx context.Context, searchKey string, results any) bool {
	return s.Set(ctx, searchKeyPrefix+searchKey, results, s.cfg.SearchTTL)
}

func (s *Service) GetSearchResults(ctx context.Context, searchKey string, dest any) bool {
	return s.Get(ctx, searchKeyPrefix+searchKey, dest)
}

func (s *Service) CacheUserSession(ctx context.Context, userID uuid.UUID, session any) bool {
	return s.Set(ctx, sessionKeyPrefix+userID.String(), session, s.cfg.SessionTTL)
}

func (s *Service) GetUserSession(ctx context.Context, userID uuid.UUID, dest any) bool {
	return s.Get(ctx, sessionKeyPrefix+userID.String(), dest)
}

func (s *Service) InvalidateUserSession(ctx context.Context, userID uuid.UUID) bool {
	return s.Delete(ctx, sessionKeyPrefix+userID.String())
}

func (s *Service) CacheDashboardStats(ctx context.Context, userID uuid.UUID, stats any) bool {
	return s.Set(ctx, dashboardKeyPrefix+userID.String(), stats, s.cfg.DashboardTTL)
}

func (s *Service) GetDashboardStats(ctx context.Context, userID uuid.UUID, dest any) bool {
	return s.Get(ctx, dashboardKeyPrefix+userID.String(), dest)
}

func (s *Service) InvalidateDashboardStats(ctx context.Context, userID uuid.UUID) bool {
	return s.Delete(ctx, dashboardKeyPrefix+userID.String())
}

func (s *Service) CacheCompanySettings(ctx context.Context, settings any) bool {
	return s.Set(ctx, companySettingsKey, settings, s.cfg.SettingsTTL)
}

func (s *Service) GetCompanySettings(ctx context.Context, dest any) bool {
	return s.Get(ctx, companySettingsKey, dest)
}

func (s *Service) InvalidateCompanySettings(ctx context.Context) bool {
	return s.Delete(ctx, companySettingsKey)
}

func (s *Service) CacheTaxRates(ctx context.Context, taxRates any) bool {
	return s.Set(ctx, taxRatesKey, taxRates, s.cfg.SettingsTTL)
}

func (s *Service) GetTaxRates(ctx context.Context, dest any) bool {
	return s.Get(ctx, taxRatesKey, dest)
}

func (s *Service) InvalidateTaxRates(ctx context.Context) bool {
	return s.Delete(ctx, taxRatesKey)
}

// ---------------------------------------------------------------------------
// Bulk invalidation
// ---------------------------------------------------------------------------

// InvalidateUserData drops a user's session and dashboard stats together.
func (s *Service) InvalidateUserData(ctx context.Context, userID uuid.UUID) {
	var wg sync.WaitGroup
	for _, key := range []string{
		sessionKeyPrefix + userID.String(),
		dashboardKeyPrefix + userID.String(),
	} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			s.store.Delete(ctx, k)
		}(key)
	}
	wg.Wait()
}

// HealthCheck round-trips a probe key. Liveness reporting only.
func (s *Service) HealthCheck(ctx context.Context) bool {
	probe := strconv.FormatInt(time.Now().UnixNano(), 10)

	if !s.store.Set(ctx, healthCheckKey, probe, 10*time.Second) {
		return false
	}

	got, ok := s.store.Get(ctx, healthCheckKey)
	s.store.Delete(ctx, healthCheckKey)

	return ok && got == probe
}
