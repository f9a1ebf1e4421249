package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turbosim/domain-config-backend/internal/geometry"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/domain"
)

// CreateDomain creates a new domain configuration
func (h *Handler) CreateDomain(c *gin.Context) {
	var body CreateDomainBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := &domain.CreateDomainRequest{
		ProjectID: body.ProjectID,
		Name:      body.Name,
		Kind:      body.Kind,
		XMin:      body.XMin,
		XMax:      body.XMax,
		YMin:      body.YMin,
		YMax:      body.YMax,
		ZMin:      body.ZMin,
		ZMax:      body.ZMax,
	}

	cfg, err := h.domainService.CreateDomain(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geometry.ErrInvalidDomainExtents) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrUnknownGeometryKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown geometry kind"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create domain configuration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"domain": cfg})
}

// GetDomain retrieves a domain configuration by ID
func (h *Handler) GetDomain(c *gin.Context) {
	domainID := c.Param("id")
	if domainID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain ID is required"})
		return
	}

	cfg, err := h.domainService.GetDomain(c.Request.Context(), domainID)
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "domain configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get domain configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"domain": cfg})
}

// DescribeDomain returns the derived view of a domain configuration: its
// boundary set and per-axis lengths.
func (h *Handler) DescribeDomain(c *gin.Context) {
	domainID := c.Param("id")
	if domainID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain ID is required"})
		return
	}

	desc, err := h.domainService.DescribeDomain(c.Request.Context(), domainID)
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "domain configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to describe domain configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": desc})
}

// UpdateDomain applies a partial update to a domain configuration
func (h *Handler) UpdateDomain(c *gin.Context) {
	domainID := c.Param("id")
	if domainID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain ID is required"})
		return
	}

	var body UpdateDomainBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := &domain.UpdateDomainRequest{
		Name: body.Name,
		XMin: body.XMin,
		XMax: body.XMax,
		YMin: body.YMin,
		YMax: body.YMax,
		ZMin: body.ZMin,
		ZMax: body.ZMax,
	}

	cfg, err := h.domainService.UpdateDomain(c.Request.Context(), domainID, req)
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "domain configuration not found"})
			return
		}
		if errors.Is(err, geometry.ErrInvalidDomainExtents) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update domain configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"domain": cfg})
}

// DeleteDomain deletes a domain configuration
func (h *Handler) DeleteDomain(c *gin.Context) {
	domainID := c.Param("id")
	if domainID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain ID is required"})
		return
	}

	if err := h.domainService.DeleteDomain(c.Request.Context(), domainID); err != nil {
		if errors.Is(err, domain.ErrDomainNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "domain configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete domain configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "domain configuration deleted successfully"})
}

// ListDomains lists all domain configurations for a project
func (h *Handler) ListDomains(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		projectID = c.GetHeader("X-Project-Id")
		if projectID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
			return
		}
	}

	configs, err := h.domainService.ListDomainsByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list domain configurations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"domains": configs})
}
