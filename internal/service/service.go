// Package service implements the broadcast queue drainer and the
// operations exposed over HTTP.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/repository"
)

type Service struct {
	Queue     QueueService
	Disparo   DisparoService
	Scheduler SchedulerService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	dispatcher Dispatcher,
	logger *zap.Logger,
) *Service {
	settings := NewSettingsProvider(cfg, repo, redisClient, logger)
	queueService := NewQueueService(cfg, repo, settings, dispatcher, redisClient, logger)
	disparoService := NewDisparoService(repo)
	schedulerService := NewSchedulerService(cfg, queueService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, queueService)

	return &Service{
		Queue:     queueService,
		Disparo:   disparoService,
		Scheduler: schedulerService,
		Health:    healthService,
	}
}
