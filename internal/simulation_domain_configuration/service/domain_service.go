package service

import (
	"context"
	"log"

	"github.com/turbosim/domain-config-backend/internal/geometry"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/domain"
)

// DomainStore is the persistent store for domain configurations.
type DomainStore interface {
	Create(ctx context.Context, cfg *domain.DomainConfig) error
	GetByDomainID(ctx context.Context, domainID string) (*domain.DomainConfig, error)
	ListByProjectID(ctx context.Context, projectID string) ([]domain.DomainConfig, error)
	ListAll(ctx context.Context) ([]domain.DomainConfig, error)
	Update(ctx context.Context, cfg *domain.DomainConfig) error
	Delete(ctx context.Context, domainID string) error
}

// DomainCache is the read-through cache in front of the store. A miss is
// reported as domain.ErrDomainNotFound.
type DomainCache interface {
	Put(ctx context.Context, cfg *domain.DomainConfig) error
	Get(ctx context.Context, domainID string) (*domain.DomainConfig, error)
	Delete(ctx context.Context, cfg *domain.DomainConfig) error
}

// DomainService handles business logic for simulation domain configurations
type DomainService struct {
	store DomainStore
	cache DomainCache
}

// NewDomainService creates a new DomainService
func NewDomainService(store DomainStore, cache DomainCache) *DomainService {
	return &DomainService{
		store: store,
		cache: cache,
	}
}

// CreateDomain validates the requested extents by constructing the geometry,
// then persists the configuration. Invalid extents never reach storage.
func (s *DomainService) CreateDomain(ctx context.Context, req *domain.CreateDomainRequest) (*domain.DomainConfig, error) {
	kind := req.Kind
	if kind == "" {
		kind = domain.KindCartesian
	}
	if kind != domain.KindCartesian {
		return nil, domain.ErrUnknownGeometryKind
	}

	// Construction is the validation gate: if the geometry cannot be built,
	// the configuration does not come into existence.
	if _, err := geometry.NewCartesianGeometry(req.XMin, req.XMax, req.YMin, req.YMax, req.ZMin, req.ZMax); err != nil {
		return nil, err
	}

	cfg := &domain.DomainConfig{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Kind:      kind,
		XMin:      req.XMin,
		XMax:      req.XMax,
		YMin:      req.YMin,
		YMax:      req.YMax,
		ZMin:      req.ZMin,
		ZMax:      req.ZMax,
	}

	if err := s.store.Create(ctx, cfg); err != nil {
		return nil, err
	}

	// Warm the cache best-effort; the store is the source of truth.
	if err := s.cache.Put(ctx, cfg); err != nil {
		log.Printf("Warning: failed to cache domain config %s: %v", cfg.DomainID, err)
	}

	return cfg, nil
}

// GetDomain retrieves a configuration, preferring the cache and refilling it
// on a miss.
func (s *DomainService) GetDomain(ctx context.Context, domainID string) (*domain.DomainConfig, error) {
	if cfg, err := s.cache.Get(ctx, domainID); err == nil {
		return cfg, nil
	}

	cfg, err := s.store.GetByDomainID(ctx, domainID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, cfg); err != nil {
		log.Printf("Warning: failed to refill cache for domain config %s: %v", domainID, err)
	}
	return cfg, nil
}

// UpdateDomain applies a partial update. The merged extents are revalidated
// as a whole before anything is persisted, so a rejected update leaves the
// stored record unchanged.
func (s *DomainService) UpdateDomain(ctx context.Context, domainID string, req *domain.UpdateDomainRequest) (*domain.DomainConfig, error) {
	cfg, err := s.store.GetByDomainID(ctx, domainID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.XMin != nil {
		cfg.XMin = *req.XMin
	}
	if req.XMax != nil {
		cfg.XMax = *req.XMax
	}
	if req.YMin != nil {
		cfg.YMin = *req.YMin
	}
	if req.YMax != nil {
		cfg.YMax = *req.YMax
	}
	if req.ZMin != nil {
		cfg.ZMin = *req.ZMin
	}
	if req.ZMax != nil {
		cfg.ZMax = *req.ZMax
	}

	if _, err := cfg.Geometry(); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, cfg); err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, cfg); err != nil {
		log.Printf("Warning: failed to cache domain config %s: %v", cfg.DomainID, err)
	}
	return cfg, nil
}

// DeleteDomain removes a configuration from the store and evicts it from
// the cache.
func (s *DomainService) DeleteDomain(ctx context.Context, domainID string) error {
	cfg, err := s.store.GetByDomainID(ctx, domainID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, domainID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, cfg); err != nil {
		log.Printf("Warning: failed to evict domain config %s: %v", domainID, err)
	}
	return nil
}

// ListDomainsByProject retrieves all configurations for a project.
func (s *DomainService) ListDomainsByProject(ctx context.Context, projectID string) ([]domain.DomainConfig, error) {
	return s.store.ListByProjectID(ctx, projectID)
}

// DescribeDomain returns the derived view of a configuration: its boundary
// set and per-axis lengths, computed from the geometry value.
func (s *DomainService) DescribeDomain(ctx context.Context, domainID string) (*domain.DomainDescription, error) {
	cfg, err := s.GetDomain(ctx, domainID)
	if err != nil {
		return nil, err
	}

	g, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}

	desc := &domain.DomainDescription{
		DomainID:   cfg.DomainID,
		Kind:       cfg.Kind,
		Boundaries: g.Boundaries(),
	}
	if cart, ok := g.(*geometry.CartesianGeometry); ok {
		desc.LX = cart.LX()
		desc.LY = cart.LY()
		desc.LZ = cart.LZ()
	}
	return desc, nil
}

// WarmCache re-writes every stored configuration into the cache and returns
// the number of entries refreshed.
func (s *DomainService) WarmCache(ctx context.Context) (int, error) {
	configs, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range configs {
		if err := s.cache.Put(ctx, &configs[i]); err != nil {
			log.Printf("Warning: failed to re-warm domain config %s: %v", configs[i].DomainID, err)
			continue
		}
		n++
	}
	return n, nil
}
