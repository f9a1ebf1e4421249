package service_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbosim/domain-config-backend/internal/geometry"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/domain"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/repository"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/service"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	err = client.Ping(context.Background()).Err()
	require.NoError(t, err)

	return client, mr
}

// memStore is an in-memory DomainStore for unit tests.
type memStore struct {
	mu      sync.Mutex
	configs map[string]domain.DomainConfig
	nextID  int
}

func newMemStore() *memStore {
	return &memStore{configs: make(map[string]domain.DomainConfig)}
}

func (m *memStore) Create(_ context.Context, cfg *domain.DomainConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cfg.DomainID == "" {
		m.nextID++
		cfg.DomainID = "dom-" + strconv.Itoa(m.nextID)
	}
	m.configs[cfg.DomainID] = *cfg
	return nil
}

func (m *memStore) GetByDomainID(_ context.Context, domainID string) (*domain.DomainConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.configs[domainID]
	if !ok {
		return nil, domain.ErrDomainNotFound
	}
	out := cfg
	return &out, nil
}

func (m *memStore) ListByProjectID(_ context.Context, projectID string) ([]domain.DomainConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.DomainConfig, 0, len(m.configs))
	for _, cfg := range m.configs {
		if cfg.ProjectID == projectID {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]domain.DomainConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.DomainConfig, 0, len(m.configs))
	for _, cfg := range m.configs {
		out = append(out, cfg)
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, cfg *domain.DomainConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[cfg.DomainID]; !ok {
		return domain.ErrDomainNotFound
	}
	m.configs[cfg.DomainID] = *cfg
	return nil
}

func (m *memStore) Delete(_ context.Context, domainID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[domainID]; !ok {
		return domain.ErrDomainNotFound
	}
	delete(m.configs, domainID)
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.configs)
}

func setupTestService(t *testing.T) (*service.DomainService, *memStore, *repository.CacheRepository, *miniredis.Miniredis, *redis.Client) {
	client, mr := setupTestRedis(t)
	store := newMemStore()
	cache := repository.NewCacheRepository(client)
	svc := service.NewDomainService(store, cache)
	return svc, store, cache, mr, client
}

func validCreateRequest() *domain.CreateDomainRequest {
	return &domain.CreateDomainRequest{
		ProjectID: "proj-1",
		Name:      "channel flow",
		XMin:      0.0, XMax: 1.0,
		YMin: -1.0, YMax: 1.0,
		ZMin: 4.0, ZMax: 5.5,
	}
}

func TestDomainService_CreateDomain(t *testing.T) {
	svc, store, cache, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	t.Run("creates and caches a valid domain", func(t *testing.T) {
		cfg, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.DomainID)
		assert.Equal(t, domain.KindCartesian, cfg.Kind)
		assert.Equal(t, 0.0, cfg.XMin)
		assert.Equal(t, 5.5, cfg.ZMax)

		cached, err := cache.Get(ctx, cfg.DomainID)
		require.NoError(t, err)
		assert.Equal(t, cfg.DomainID, cached.DomainID)
	})

	t.Run("rejects invalid extents and persists nothing", func(t *testing.T) {
		before := store.len()

		req := validCreateRequest()
		req.XMin, req.XMax = 1.0, 0.0

		cfg, err := svc.CreateDomain(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, geometry.ErrInvalidDomainExtents)
		assert.Nil(t, cfg)
		assert.Equal(t, before, store.len())
	})

	t.Run("rejects equal bounds on a single axis", func(t *testing.T) {
		req := validCreateRequest()
		req.ZMin, req.ZMax = 2.0, 2.0

		_, err := svc.CreateDomain(ctx, req)
		assert.ErrorIs(t, err, geometry.ErrInvalidDomainExtents)
	})

	t.Run("rejects unknown geometry kind", func(t *testing.T) {
		req := validCreateRequest()
		req.Kind = "tripolar"

		_, err := svc.CreateDomain(ctx, req)
		assert.ErrorIs(t, err, domain.ErrUnknownGeometryKind)
	})

	t.Run("defaults kind to cartesian", func(t *testing.T) {
		req := validCreateRequest()
		req.Kind = ""

		cfg, err := svc.CreateDomain(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.KindCartesian, cfg.Kind)
	})
}

func TestDomainService_GetDomain(t *testing.T) {
	svc, _, cache, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	t.Run("returns stored extents verbatim", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		got, err := svc.GetDomain(ctx, created.DomainID)
		require.NoError(t, err)
		assert.Equal(t, created.XMin, got.XMin)
		assert.Equal(t, created.XMax, got.XMax)
		assert.Equal(t, created.YMin, got.YMin)
		assert.Equal(t, created.YMax, got.YMax)
		assert.Equal(t, created.ZMin, got.ZMin)
		assert.Equal(t, created.ZMax, got.ZMax)
	})

	t.Run("cache miss falls through to store and refills", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		// Simulate TTL expiry
		mr.FlushAll()
		_, err = cache.Get(ctx, created.DomainID)
		require.ErrorIs(t, err, domain.ErrDomainNotFound)

		got, err := svc.GetDomain(ctx, created.DomainID)
		require.NoError(t, err)
		assert.Equal(t, created.DomainID, got.DomainID)

		refilled, err := cache.Get(ctx, created.DomainID)
		require.NoError(t, err)
		assert.Equal(t, created.DomainID, refilled.DomainID)
	})

	t.Run("unknown domain returns not found", func(t *testing.T) {
		_, err := svc.GetDomain(ctx, "no-such-domain")
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
	})
}

func TestDomainService_UpdateDomain(t *testing.T) {
	svc, _, _, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	t.Run("applies a partial extent update", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		newXMax := 2.0
		updated, err := svc.UpdateDomain(ctx, created.DomainID, &domain.UpdateDomainRequest{XMax: &newXMax})
		require.NoError(t, err)
		assert.Equal(t, 2.0, updated.XMax)
		assert.Equal(t, created.XMin, updated.XMin)
		assert.Equal(t, created.YMin, updated.YMin)
	})

	t.Run("rejects an update that degenerates an axis", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		badXMax := created.XMin // equal bounds are invalid
		_, err = svc.UpdateDomain(ctx, created.DomainID, &domain.UpdateDomainRequest{XMax: &badXMax})
		require.ErrorIs(t, err, geometry.ErrInvalidDomainExtents)

		// Stored record is unchanged.
		got, err := svc.GetDomain(ctx, created.DomainID)
		require.NoError(t, err)
		assert.Equal(t, created.XMax, got.XMax)
	})

	t.Run("renames without touching extents", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		name := "renamed"
		updated, err := svc.UpdateDomain(ctx, created.DomainID, &domain.UpdateDomainRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, created.XMax, updated.XMax)
	})

	t.Run("unknown domain returns not found", func(t *testing.T) {
		name := "x"
		_, err := svc.UpdateDomain(ctx, "no-such-domain", &domain.UpdateDomainRequest{Name: &name})
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
	})
}

func TestDomainService_DeleteDomain(t *testing.T) {
	svc, _, cache, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	t.Run("deletes and evicts", func(t *testing.T) {
		created, err := svc.CreateDomain(ctx, validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteDomain(ctx, created.DomainID))

		_, err = svc.GetDomain(ctx, created.DomainID)
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)

		_, err = cache.Get(ctx, created.DomainID)
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
	})

	t.Run("unknown domain returns not found", func(t *testing.T) {
		err := svc.DeleteDomain(ctx, "no-such-domain")
		assert.ErrorIs(t, err, domain.ErrDomainNotFound)
	})
}

func TestDomainService_DescribeDomain(t *testing.T) {
	svc, _, _, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	created, err := svc.CreateDomain(ctx, validCreateRequest())
	require.NoError(t, err)

	desc, err := svc.DescribeDomain(ctx, created.DomainID)
	require.NoError(t, err)

	assert.Equal(t, created.DomainID, desc.DomainID)
	assert.Equal(t, domain.KindCartesian, desc.Kind)
	assert.ElementsMatch(t,
		[]string{"x_min", "x_max", "y_min", "y_max", "z_min", "z_max"},
		desc.Boundaries,
	)
	assert.Equal(t, 1.0, desc.LX)
	assert.Equal(t, 2.0, desc.LY)
	assert.Equal(t, 1.5, desc.LZ)
}

func TestDomainService_WarmCache(t *testing.T) {
	svc, _, cache, mr, client := setupTestService(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	first, err := svc.CreateDomain(ctx, validCreateRequest())
	require.NoError(t, err)
	second, err := svc.CreateDomain(ctx, validCreateRequest())
	require.NoError(t, err)

	// Simulate TTL expiry, then re-warm everything from the store.
	mr.FlushAll()

	n, err := svc.WarmCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{first.DomainID, second.DomainID} {
		cached, err := cache.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, cached.DomainID)
	}
}
