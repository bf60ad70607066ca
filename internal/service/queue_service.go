package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/gateway"
	"github.com/popeskul/disparo-queue/internal/models"
	"github.com/popeskul/disparo-queue/internal/repository"
	"github.com/popeskul/disparo-queue/internal/template"
)

const messageIDTTL = 24 * time.Hour

// Clock returns the current instant.
type Clock func() time.Time

type QueueOption func(*queueService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock Clock) QueueOption {
	return func(s *queueService) {
		s.now = clock
	}
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeFailed
	outcomeSkipped
)

type queueService struct {
	cfg         *config.Config
	repo        repository.Repository
	settings    SettingsProvider
	dispatcher  Dispatcher
	redisClient *redis.Client
	logger      *zap.Logger
	location    *time.Location
	now         Clock

	mu      sync.RWMutex
	lastRun *RunStatus
}

func NewQueueService(
	cfg *config.Config,
	repo repository.Repository,
	settings SettingsProvider,
	dispatcher Dispatcher,
	redisClient *redis.Client,
	logger *zap.Logger,
	opts ...QueueOption,
) QueueService {
	s := &queueService{
		cfg:         cfg,
		repo:        repo,
		settings:    settings,
		dispatcher:  dispatcher,
		redisClient: redisClient,
		logger:      logger,
		location:    cfg.Queue.Location(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessQueue runs one drain pass over the due rows. Row-level failures are
// recorded on the rows; only setup failures are returned. On
// ErrConfigurationMissing the result carries the pending count.
func (s *queueService) ProcessQueue(ctx context.Context) (*models.QueueResult, error) {
	start := s.now()

	result, err := s.process(ctx, start)
	if result != nil {
		result.Duration = s.now().Sub(start)
	}

	s.recordRun(start, result, err)

	return result, err
}

func (s *queueService) process(ctx context.Context, start time.Time) (*models.QueueResult, error) {
	details, err := s.repo.Disparo().GetDueDetails(ctx, start, s.cfg.Queue.BatchSize)
	if err != nil {
		s.logger.Error("Failed to get due details", zap.Error(err))
		return nil, fmt.Errorf("failed to get due details: %w", err)
	}

	if len(details) == 0 {
		s.logger.Debug("No pending messages")
		return &models.QueueResult{}, nil
	}

	settings, err := s.settings.GatewaySettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Complete() {
		s.logger.Error("Gateway configuration missing, batch aborted",
			zap.Int("pendingCount", len(details)),
			zap.Bool("hasBaseURL", settings.BaseURL != ""),
			zap.Bool("hasAPIKey", settings.APIKey != ""))
		return &models.QueueResult{PendingCount: len(details)}, ErrConfigurationMissing
	}

	dir, err := s.loadDirectory(ctx, details)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Processing due details", zap.Int("count", len(details)))

	result := &models.QueueResult{}
	var touched []uuid.UUID
	seen := make(map[uuid.UUID]struct{})

	for _, detail := range details {
		if err := ctx.Err(); err != nil {
			s.completeDisparos(context.WithoutCancel(ctx), touched)
			return result, fmt.Errorf("drain interrupted after %d rows: %w", result.Processed, err)
		}

		result.Processed++
		switch s.processDetail(ctx, detail, dir, settings) {
		case outcomeSent:
			result.Success++
		case outcomeFailed:
			result.Failed++
		case outcomeSkipped:
			result.Skipped++
			continue
		}

		if _, ok := seen[detail.DisparoID]; !ok {
			seen[detail.DisparoID] = struct{}{}
			touched = append(touched, detail.DisparoID)
		}
	}

	s.completeDisparos(ctx, touched)

	s.logger.Info("Drain pass finished",
		zap.Int("processed", result.Processed),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (s *queueService) loadDirectory(ctx context.Context, details []*models.DisparoDetalhe) (*models.Directory, error) {
	var conexaoIDs, contatoIDs, grupoIDs []uuid.UUID
	for _, d := range details {
		if d.ConexaoID.Valid {
			conexaoIDs = append(conexaoIDs, d.ConexaoID.UUID)
		}
		if d.ContatoID.Valid {
			contatoIDs = append(contatoIDs, d.ContatoID.UUID)
		}
		if d.GrupoID.Valid {
			grupoIDs = append(grupoIDs, d.GrupoID.UUID)
		}
	}

	directory := s.repo.Directory()

	conexoes, err := directory.GetConexoes(ctx, unique(conexaoIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to prefetch conexoes: %w", err)
	}
	contatos, err := directory.GetContatos(ctx, unique(contatoIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to prefetch contatos: %w", err)
	}
	grupos, err := directory.GetGrupos(ctx, unique(grupoIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to prefetch grupos: %w", err)
	}

	return &models.Directory{
		Conexoes: conexoes,
		Contatos: contatos,
		Grupos:   grupos,
	}, nil
}

func (s *queueService) processDetail(
	ctx context.Context,
	detail *models.DisparoDetalhe,
	dir *models.Directory,
	settings *GatewaySettings,
) outcome {
	log := s.logger.With(
		zap.String("detailID", detail.ID.String()),
		zap.String("disparoID", detail.DisparoID.String()))

	claimed, err := s.repo.Disparo().ClaimDetail(ctx, detail.ID)
	if err != nil {
		log.Error("Failed to claim detail", zap.Error(err))
		return outcomeSkipped
	}
	if !claimed {
		log.Info("Detail already claimed by another run")
		return outcomeSkipped
	}

	recipient, err := ResolveRecipient(detail, dir)
	if err != nil {
		return s.fail(ctx, log, detail, nil, err)
	}

	conexao, err := resolveConexao(detail, dir)
	if err != nil {
		return s.fail(ctx, log, detail, nil, err)
	}

	media, err := detail.Payload.Media()
	if err != nil {
		return s.fail(ctx, log, detail, nil, err)
	}

	text := template.Render(detail.Mensagem, template.Vars{
		Name:       recipient.Name,
		Attributes: recipient.Attributes,
		Now:        s.now().In(s.location),
	})

	creds := gateway.Credentials{
		BaseURL:  settings.BaseURL,
		Instance: conexao.InstanceName,
		APIKey:   settings.APIKey,
	}
	if conexao.APIKey.Valid && conexao.APIKey.String != "" {
		creds.APIKey = conexao.APIKey.String
	}

	// A claimed row is always dispatched; cancellation takes effect before the next row.
	resp, err := s.dispatcher.Send(context.WithoutCancel(ctx), creds, recipient.Destination, gateway.FromMedia(text, media))
	if errors.Is(err, gateway.ErrCircuitOpen) {
		log.Warn("Gateway circuit open, detail released")
		if relErr := s.repo.Disparo().ReleaseDetail(context.WithoutCancel(ctx), detail.ID); relErr != nil {
			log.Error("Failed to release detail", zap.Error(relErr))
		}
		return outcomeSkipped
	}
	if err != nil {
		s.onGatewayError(ctx, err)
		return s.fail(ctx, log, detail, resp, err)
	}

	sentAt := s.now()
	statusCode := resp.StatusCode
	if err := s.repo.Disparo().CompleteDetail(context.WithoutCancel(ctx), detail.ID, &models.DeliveryResult{
		Status:       models.DetailStatusSent,
		StatusHTTP:   &statusCode,
		RespostaHTTP: resp.Body,
		SentAt:       &sentAt,
	}); err != nil {
		log.Error("Failed to record sent detail", zap.Error(err))
	}

	s.cacheMessageID(ctx, log, detail.ID, resp.Body)

	log.Info("Detail sent",
		zap.String("destination", recipient.Destination),
		zap.Int("statusCode", statusCode))

	return outcomeSent
}

func (s *queueService) fail(
	ctx context.Context,
	log *zap.Logger,
	detail *models.DisparoDetalhe,
	resp *gateway.Response,
	cause error,
) outcome {
	msg := cause.Error()
	result := &models.DeliveryResult{
		Status:       models.DetailStatusFailed,
		RespostaHTTP: models.EmptyObject,
		Error:        &msg,
	}
	if resp != nil {
		statusCode := resp.StatusCode
		result.StatusHTTP = &statusCode
		result.RespostaHTTP = resp.Body
	}

	log.Warn("Detail failed", zap.Error(cause))

	if err := s.repo.Disparo().CompleteDetail(context.WithoutCancel(ctx), detail.ID, result); err != nil {
		log.Error("Failed to record failed detail", zap.Error(err))
	}

	return outcomeFailed
}

// onGatewayError drops cached credentials once the gateway rejects them.
func (s *queueService) onGatewayError(ctx context.Context, err error) {
	var gwErr *gateway.GatewayError
	if !errors.As(err, &gwErr) {
		return
	}
	if gwErr.StatusCode != http.StatusUnauthorized && gwErr.StatusCode != http.StatusForbidden {
		return
	}
	if invErr := s.settings.Invalidate(ctx); invErr != nil {
		s.logger.Warn("Failed to invalidate gateway settings", zap.Error(invErr))
	}
}

func (s *queueService) cacheMessageID(ctx context.Context, log *zap.Logger, detailID uuid.UUID, body models.RawJSON) {
	messageID := gateway.MessageID(body)
	if messageID == "" {
		return
	}

	cacheKey := fmt.Sprintf("disparo:message:%s", messageID)
	if err := s.redisClient.Set(ctx, cacheKey, detailID.String(), messageIDTTL).Err(); err != nil {
		log.Warn("Failed to cache message ID in Redis",
			zap.String("messageID", messageID),
			zap.Error(err))
	}
}

// completeDisparos marks every touched broadcast without open rows as completed.
func (s *queueService) completeDisparos(ctx context.Context, ids []uuid.UUID) {
	for _, id := range ids {
		log := s.logger.With(zap.String("disparoID", id.String()))

		open, err := s.repo.Disparo().CountOpenDetails(ctx, id)
		if err != nil {
			log.Error("Failed to count open details", zap.Error(err))
			continue
		}
		if open > 0 {
			continue
		}

		changed, err := s.repo.Disparo().MarkDisparoCompleted(ctx, id)
		if err != nil {
			log.Error("Failed to complete disparo", zap.Error(err))
			continue
		}
		if changed {
			log.Info("Disparo completed")
		}
	}
}

func (s *queueService) recordRun(start time.Time, result *models.QueueResult, err error) {
	run := &RunStatus{StartedAt: start}
	if result != nil {
		run.Processed = result.Processed
	}
	if err != nil {
		run.Error = err.Error()
	}

	s.mu.Lock()
	s.lastRun = run
	s.mu.Unlock()
}

// LastRun returns the most recent pass, or nil before the first one.
func (s *queueService) LastRun() *RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastRun == nil {
		return nil
	}
	run := *s.lastRun
	return &run
}

func (s *queueService) GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32) {
	return s.dispatcher.BreakerState()
}

func resolveConexao(detail *models.DisparoDetalhe, dir *models.Directory) (*models.Conexao, error) {
	if !detail.ConexaoID.Valid {
		return nil, ErrConnectionNotFound
	}
	conexao, ok := dir.Conexoes[detail.ConexaoID.UUID]
	if !ok || conexao.InstanceName == "" {
		return nil, fmt.Errorf("conexao %s: %w", detail.ConexaoID.UUID, ErrConnectionNotFound)
	}
	return conexao, nil
}

func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
