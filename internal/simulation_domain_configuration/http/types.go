package http

import (
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/service"
)

// Handler handles HTTP requests for simulation domain configurations
type Handler struct {
	domainService *service.DomainService
}

// New creates a new Handler
func New(domainService *service.DomainService) *Handler {
	return &Handler{
		domainService: domainService,
	}
}

// CreateDomainBody is the request body for creating a domain configuration.
// Extents are ordered x_min, x_max, y_min, y_max, z_min, z_max.
type CreateDomainBody struct {
	ProjectID string  `json:"project_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Kind      string  `json:"kind,omitempty"`
	XMin      float64 `json:"x_min"`
	XMax      float64 `json:"x_max"`
	YMin      float64 `json:"y_min"`
	YMax      float64 `json:"y_max"`
	ZMin      float64 `json:"z_min"`
	ZMax      float64 `json:"z_max"`
}

// UpdateDomainBody is the request body for a partial update; omitted fields
// are left unchanged.
type UpdateDomainBody struct {
	Name *string  `json:"name,omitempty"`
	XMin *float64 `json:"x_min,omitempty"`
	XMax *float64 `json:"x_max,omitempty"`
	YMin *float64 `json:"y_min,omitempty"`
	YMax *float64 `json:"y_max,omitempty"`
	ZMin *float64 `json:"z_min,omitempty"`
	ZMax *float64 `json:"z_max,omitempty"`
}
