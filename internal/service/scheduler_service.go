package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/scheduler"
)

type schedulerService struct {
	scheduler    *scheduler.Scheduler
	queueService QueueService
	logger       *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	queueService QueueService,
	logger *zap.Logger,
) SchedulerService {
	svc := &schedulerService{
		queueService: queueService,
		logger:       logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, cfg.Queue.Interval(), svc.executeDrainTask)
	return svc
}

func (s *schedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeDrainTask(ctx context.Context) error {
	_, err := s.queueService.ProcessQueue(ctx)
	if errors.Is(err, ErrConfigurationMissing) {
		// Nothing was claimed; the next tick retries once settings exist.
		s.logger.Warn("Scheduled drain skipped", zap.Error(err))
		return nil
	}
	return err
}
