package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/service"
)

// Scheduler periodically re-warms the Redis cache from Postgres so that
// solver-side readers keep hitting the cache after TTL expiry.
type Scheduler struct {
	domainService *service.DomainService
}

// NewScheduler creates a new Scheduler
func NewScheduler(domainService *service.DomainService) *Scheduler {
	return &Scheduler{domainService: domainService}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// Hourly, on the hour
	_, err := c.AddFunc("0 0 * * * *", func() {
		s.resyncCache()
	})
	if err != nil {
		log.Printf("Failed to create cache resync cron job: %v", err)
		return
	}

	log.Println("Cache resync scheduler started (running hourly)")
	c.Start()
}

func (s *Scheduler) resyncCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := s.domainService.WarmCache(ctx)
	if err != nil {
		log.Printf("Cache resync failed: %v", err)
		return
	}
	log.Printf("Cache resync completed: %d domain configurations refreshed", n)
}
