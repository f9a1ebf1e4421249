package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/domain"
)

const (
	domainKeyPrefix  = "domcfg:"  // Key for config data: domcfg:{domain_id}
	projectSetPrefix = "domproj:" // Set of domain IDs for a project: domproj:{project_id}
	domainTTL        = 24 * time.Hour
)

// CacheRepository handles Redis caching of domain configurations. Entries
// expire after domainTTL; the cron resync job re-warms them from Postgres.
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository creates a new CacheRepository
func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// Put stores a domain configuration and indexes it under its project.
func (r *CacheRepository) Put(ctx context.Context, cfg *domain.DomainConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal domain config: %w", err)
	}

	domainKey := r.domainKey(cfg.DomainID)
	projectKey := r.projectSetKey(cfg.ProjectID)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, domainKey, data, domainTTL)
	pipe.SAdd(ctx, projectKey, cfg.DomainID)
	pipe.Expire(ctx, projectKey, domainTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache domain config: %w", err)
	}
	return nil
}

// Get retrieves a cached domain configuration. A cache miss is reported as
// domain.ErrDomainNotFound; callers fall through to the persistent store.
func (r *CacheRepository) Get(ctx context.Context, domainID string) (*domain.DomainConfig, error) {
	data, err := r.client.Get(ctx, r.domainKey(domainID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrDomainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached domain config: %w", err)
	}

	var cfg domain.DomainConfig
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached domain config: %w", err)
	}
	return &cfg, nil
}

// Delete evicts a domain configuration and its project index entry.
func (r *CacheRepository) Delete(ctx context.Context, cfg *domain.DomainConfig) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.domainKey(cfg.DomainID))
	pipe.SRem(ctx, r.projectSetKey(cfg.ProjectID), cfg.DomainID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to evict domain config: %w", err)
	}
	return nil
}

// ListProjectDomainIDs returns the cached domain IDs for a project.
func (r *CacheRepository) ListProjectDomainIDs(ctx context.Context, projectID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.projectSetKey(projectID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cached domain IDs: %w", err)
	}
	return ids, nil
}

// Helper methods for key generation
func (r *CacheRepository) domainKey(domainID string) string {
	return fmt.Sprintf("%s%s", domainKeyPrefix, domainID)
}

func (r *CacheRepository) projectSetKey(projectID string) string {
	return fmt.Sprintf("%s%s", projectSetPrefix, projectID)
}
