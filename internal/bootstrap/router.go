package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/turbosim/domain-config-backend/internal/api/http"
	"github.com/turbosim/domain-config-backend/internal/api/http/middleware"
	domhttp "github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/http"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/service"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	APIKey        string
	DomainService *service.DomainService
	DB            *pgxpool.Pool
	Redis         *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-API-Key", "X-Request-Id", "X-Project-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(rate.Limit(50), 100))
	api.Use(middleware.APIKeyMiddleware(dep.APIKey))

	domainsGroup := api.Group("/domains")
	domhttp.New(dep.DomainService).Register(domainsGroup)

	return r
}
