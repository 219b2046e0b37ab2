package queue

import (
	"agsys/internal/domain/model"
	"agsys/pkg/sqs"
)

// HealthGateway aggregates the health of the queue workers running in this process.
type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}

// WorkerHealthChecker is implemented by *sqs.Worker.
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealth
}
