package app

import (
	"context"

	"agsys/internal/application/controller"
	"agsys/internal/application/processor"
	"agsys/internal/domain/gateway/queue"
	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/events"
	"agsys/internal/domain/usecase/health"
	awsinfra "agsys/internal/infra/aws"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/sqs"
)

// EmbeddingEvents starts the embedding events worker when a queue is configured, mounts
// /events/stats and adds the queue component to healthOpts.
func (a *App) EmbeddingEvents(ctx context.Context, healthOpts *health.Options) error {
	queueName := a.Settings.AWS.EmbeddingEventsQueue
	useCase := events.NewEventsUseCase(queueName)
	controller.NewEventsController(a.Server.API(), useCase).InitEventsRoutes()

	queueHealth := queue.NewQueueHealthGateway()
	if healthOpts.Components == nil {
		healthOpts.Components = make(map[string]health.ComponentCheck)
	}
	healthOpts.Components["queue"] = func(context.Context) model.ComponentHealthStatus {
		return queueHealth.Health()
	}

	if queueName == "" {
		return nil
	}

	cfg, err := a.AWS(ctx)
	if err != nil {
		return err
	}

	worker, err := sqs.NewWorker(ctx, awsinfra.NewSQSClient(cfg), queueName, processor.NewEmbeddingEventProcessor(useCase), &sqs.WorkerConfig{
		MaxNumberOfMessages: a.Settings.AWS.SQSMaxMessages,
		WaitTimeSeconds:     a.Settings.AWS.SQSWaitTimeSeconds,
	})
	if err != nil {
		return err
	}
	queueHealth.RegisterWorker("embedding_events", worker)

	workerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Start(workerCtx)
	}()
	log.Info(msg.GetMessage("events.worker-start", queueName))

	a.Server.OnShutdown("embedding events worker", func(shutdownCtx context.Context) error {
		cancel()
		select {
		case <-done:
			return nil
		case <-shutdownCtx.Done():
			return shutdownCtx.Err()
		}
	})
	return nil
}
