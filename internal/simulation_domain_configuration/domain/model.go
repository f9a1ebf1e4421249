package domain

import (
	"time"

	"github.com/turbosim/domain-config-backend/internal/geometry"
)

// Geometry kind constants
const (
	KindCartesian = "cartesian"
)

// DomainConfig represents a stored simulation domain configuration
type DomainConfig struct {
	DomainID  string    `json:"domain_id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"` // currently always "cartesian"
	XMin      float64   `json:"x_min"`
	XMax      float64   `json:"x_max"`
	YMin      float64   `json:"y_min"`
	YMax      float64   `json:"y_max"`
	ZMin      float64   `json:"z_min"`
	ZMax      float64   `json:"z_max"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Geometry constructs the geometry value described by this configuration.
// The stored extents are revalidated; a record that no longer satisfies the
// extent invariant is surfaced as an error, never served as a geometry.
func (d *DomainConfig) Geometry() (geometry.Geometry, error) {
	switch d.Kind {
	case KindCartesian:
		return geometry.NewCartesianGeometry(d.XMin, d.XMax, d.YMin, d.YMax, d.ZMin, d.ZMax)
	default:
		return nil, ErrUnknownGeometryKind
	}
}

// DomainDescription is the derived view of a configuration: the boundary set
// and per-axis lengths computed from the geometry, never stored.
type DomainDescription struct {
	DomainID   string              `json:"domain_id"`
	Kind       string              `json:"kind"`
	Boundaries []geometry.Boundary `json:"boundaries"`
	LX         float64             `json:"lx"`
	LY         float64             `json:"ly"`
	LZ         float64             `json:"lz"`
}

// CreateDomainRequest represents data needed to create a domain configuration
type CreateDomainRequest struct {
	ProjectID string
	Name      string
	Kind      string
	XMin      float64
	XMax      float64
	YMin      float64
	YMax      float64
	ZMin      float64
	ZMax      float64
}

// UpdateDomainRequest represents a partial update; nil fields are left unchanged
type UpdateDomainRequest struct {
	Name *string
	XMin *float64
	XMax *float64
	YMin *float64
	YMax *float64
	ZMin *float64
	ZMax *float64
}
