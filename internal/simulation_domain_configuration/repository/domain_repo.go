package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/domain"
)

// DomainRepository provides Postgres persistence for domain configurations
type DomainRepository struct {
	db *pgxpool.Pool
}

// NewDomainRepository creates a new DomainRepository
func NewDomainRepository(db *pgxpool.Pool) *DomainRepository {
	return &DomainRepository{db: db}
}

// EnsureSchema creates the domain_configs table if it does not exist.
func (r *DomainRepository) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists domain_configs (
	domain_id  uuid primary key,
	project_id text not null,
	name       text not null,
	kind       text not null,
	x_min      double precision not null,
	x_max      double precision not null,
	y_min      double precision not null,
	y_max      double precision not null,
	z_min      double precision not null,
	z_max      double precision not null,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
create index if not exists domain_configs_project_idx on domain_configs (project_id);
`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure domain_configs schema: %w", err)
	}
	return nil
}

// Create inserts a new domain configuration, assigning an ID if missing.
func (r *DomainRepository) Create(ctx context.Context, cfg *domain.DomainConfig) error {
	if cfg.DomainID == "" {
		cfg.DomainID = uuid.New().String()
	}
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	const q = `
insert into domain_configs
	(domain_id, project_id, name, kind, x_min, x_max, y_min, y_max, z_min, z_max, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`
	_, err := r.db.Exec(ctx, q,
		cfg.DomainID, cfg.ProjectID, cfg.Name, cfg.Kind,
		cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax, cfg.ZMin, cfg.ZMax,
		cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create domain config: %w", err)
	}
	return nil
}

// GetByDomainID retrieves a domain configuration by its ID
func (r *DomainRepository) GetByDomainID(ctx context.Context, domainID string) (*domain.DomainConfig, error) {
	const q = `
select domain_id, project_id, name, kind, x_min, x_max, y_min, y_max, z_min, z_max, created_at, updated_at
from domain_configs
where domain_id = $1;
`
	var cfg domain.DomainConfig
	err := r.db.QueryRow(ctx, q, domainID).Scan(
		&cfg.DomainID, &cfg.ProjectID, &cfg.Name, &cfg.Kind,
		&cfg.XMin, &cfg.XMax, &cfg.YMin, &cfg.YMax, &cfg.ZMin, &cfg.ZMax,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDomainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get domain config: %w", err)
	}
	return &cfg, nil
}

// ListByProjectID returns all domain configurations for the given project.
func (r *DomainRepository) ListByProjectID(ctx context.Context, projectID string) ([]domain.DomainConfig, error) {
	const q = `
select domain_id, project_id, name, kind, x_min, x_max, y_min, y_max, z_min, z_max, created_at, updated_at
from domain_configs
where project_id = $1
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain configs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DomainConfig, 0, 16)
	for rows.Next() {
		var cfg domain.DomainConfig
		if err := rows.Scan(
			&cfg.DomainID, &cfg.ProjectID, &cfg.Name, &cfg.Kind,
			&cfg.XMin, &cfg.XMax, &cfg.YMin, &cfg.YMax, &cfg.ZMin, &cfg.ZMax,
			&cfg.CreatedAt, &cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// ListAll returns every stored domain configuration. Used by the cache
// resync job.
func (r *DomainRepository) ListAll(ctx context.Context) ([]domain.DomainConfig, error) {
	const q = `
select domain_id, project_id, name, kind, x_min, x_max, y_min, y_max, z_min, z_max, created_at, updated_at
from domain_configs
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list domain configs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DomainConfig, 0, 64)
	for rows.Next() {
		var cfg domain.DomainConfig
		if err := rows.Scan(
			&cfg.DomainID, &cfg.ProjectID, &cfg.Name, &cfg.Kind,
			&cfg.XMin, &cfg.XMax, &cfg.YMin, &cfg.YMax, &cfg.ZMin, &cfg.ZMax,
			&cfg.CreatedAt, &cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of an existing configuration.
func (r *DomainRepository) Update(ctx context.Context, cfg *domain.DomainConfig) error {
	cfg.UpdatedAt = time.Now().UTC()

	const q = `
update domain_configs
set name = $2, x_min = $3, x_max = $4, y_min = $5, y_max = $6, z_min = $7, z_max = $8, updated_at = $9
where domain_id = $1;
`
	ct, err := r.db.Exec(ctx, q,
		cfg.DomainID, cfg.Name,
		cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax, cfg.ZMin, cfg.ZMax,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update domain config: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDomainNotFound
	}
	return nil
}

// Delete removes a domain configuration
func (r *DomainRepository) Delete(ctx context.Context, domainID string) error {
	const q = `delete from domain_configs where domain_id = $1;`
	ct, err := r.db.Exec(ctx, q, domainID)
	if err != nil {
		return fmt.Errorf("failed to delete domain config: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDomainNotFound
	}
	return nil
}
