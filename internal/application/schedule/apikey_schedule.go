package schedule

import (
	"context"
	"fmt"

	"agsys/pkg/log"
	"agsys/pkg/msg"

	"github.com/go-co-op/gocron/v2"
)

// KeyRefresher is implemented by *apiclient.Client.
type KeyRefresher interface {
	SecretName() string
	InvalidateAPIKey()
	APIKey(ctx context.Context) (string, error)
}

// APIKeyScheduler periodically drops the cached service API key and fetches it again, so rotated
// keys are picked up without a restart.
type APIKeyScheduler struct {
	scheduler gocron.Scheduler
	client    KeyRefresher
	cron      string
}

func NewAPIKeyScheduler(client KeyRefresher, cronExpression string) (*APIKeyScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &APIKeyScheduler{scheduler: scheduler, client: client, cron: cronExpression}, nil
}

// InitAPIKeyScheduleTasks registers the refresh job (standard five-field cron) and starts the scheduler.
func (s *APIKeyScheduler) InitAPIKeyScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cron, false),
		gocron.NewTask(s.RefreshAPIKey),
		gocron.WithName("api-key-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Error(msg.GetMessage("apikey.refresh-error", err))
		return fmt.Errorf("failed to schedule API key refresh: %w", err)
	}

	s.scheduler.Start()
	log.Info(msg.GetMessage("apikey.refresh-scheduled", s.cron))
	return nil
}

func (s *APIKeyScheduler) RefreshAPIKey(ctx context.Context) {
	s.client.InvalidateAPIKey()
	if _, err := s.client.APIKey(ctx); err != nil {
		log.Error(msg.GetMessage("apikey.fetch-error", s.client.SecretName(), err))
	}
}

// Shutdown stops the scheduler and waits for a running refresh to finish.
func (s *APIKeyScheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}
