package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cleanenergy-leads/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// digestTimeout bounds a single digest run
const digestTimeout = 30 * time.Second

// CronService runs the periodic lead digest
type CronService struct {
	leadRepo repositories.LeadRepository
	schedule string
	cron     *cron.Cron
	now      func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// NewCronService creates a cron service; an empty schedule disables it
func NewCronService(leadRepo repositories.LeadRepository, schedule string) *CronService {
	return &CronService{
		leadRepo: leadRepo,
		schedule: schedule,
		cron:     cron.New(),
		now:      time.Now,
		lastRun:  time.Now(),
	}
}

// Start registers the digest job and starts the scheduler
func (s *CronService) Start() error {
	if s.schedule == "" {
		log.Println("⏸️ Lead digest disabled (DIGEST_SCHEDULE empty)")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runDigest); err != nil {
		return fmt.Errorf("invalid DIGEST_SCHEDULE %q: %w", s.schedule, err)
	}
	s.cron.Start()

	log.Printf("🚀 Lead digest scheduled [%s]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running digest to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Lead digest stopped")
}

func (s *CronService) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	if _, err := s.Digest(ctx); err != nil {
		log.Printf("❌ Lead digest failed: %v", err)
	}
}

// Digest logs how many leads arrived since the previous run and returns that count
func (s *CronService) Digest(ctx context.Context) (int64, error) {
	s.mu.Lock()
	since := s.lastRun
	now := s.now()
	s.mu.Unlock()

	count, err := s.leadRepo.CountSince(ctx, since)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.lastRun = now
	s.mu.Unlock()

	log.Printf("📊 Lead digest: %d new lead(s) since %s", count, since.Format("2006-01-02 15:04:05"))
	return count, nil
}
