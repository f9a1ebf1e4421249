package http

import "github.com/gin-gonic/gin"

// Register registers the domain configuration routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateDomain)
	rg.GET("", h.ListDomains)
	rg.GET("/:id", h.GetDomain)
	rg.GET("/:id/boundaries", h.DescribeDomain)
	rg.PUT("/:id", h.UpdateDomain)
	rg.DELETE("/:id", h.DeleteDomain)
}
