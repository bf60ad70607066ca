// Package handler provides HTTP request handlers for the application.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/api"
	"github.com/popeskul/disparo-queue/internal/middleware"
	"github.com/popeskul/disparo-queue/internal/scheduler"
	"github.com/popeskul/disparo-queue/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeDisparoNotFound         = "DISPARO_NOT_FOUND"
	errorCodeInvalidParameter        = "INVALID_PARAMETER"
	errorCodeQueueFailed             = "QUEUE_PROCESSING_FAILED"
)

const (
	errorMessageSchedulerAlreadyRunning = "Scheduler is already running"
	errorMessageSchedulerNotRunning     = "Scheduler is not running"
	errorMessageFailedToStartScheduler  = "Failed to start scheduler"
	errorMessageFailedToStopScheduler   = "Failed to stop scheduler"
	errorMessageFailedToProcessQueue    = "Failed to process queue"
	errorMessageFailedToGetProgress     = "Failed to retrieve disparo progress"
	errorMessageFailedToListDetails     = "Failed to retrieve disparo details"
	errorMessageDisparoNotFound         = "Disparo not found"
	errorMessageInvalidStatus           = "Invalid status filter"
	errorMessageGatewayNotConfigured    = "Gateway API key not configured"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
	queueMessageIdle        = "No pending messages"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ProcessQueue implements api.ServerInterface. A started batch is not
// interrupted when the client goes away.
func (h *Handler) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	result, err := h.service.Queue.ProcessQueue(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrConfigurationMissing) {
			pending := 0
			if result != nil {
				pending = result.PendingCount
			}
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, api.ConfigurationErrorResponse{
				Error:        errorMessageGatewayNotConfigured,
				PendingCount: pending,
			})
			return
		}

		h.logger.Error("Failed to process queue",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorCodeQueueFailed, errorMessageFailedToProcessQueue)
		return
	}

	if result.Processed == 0 {
		message := queueMessageIdle
		render.JSON(w, r, api.ProcessQueueResponse{
			Processed: 0,
			Message:   &message,
		})
		return
	}

	duration := fmt.Sprintf("%dms", result.Duration.Milliseconds())
	render.JSON(w, r, api.ProcessQueueResponse{
		Processed: result.Processed,
		Success:   &result.Success,
		Failed:    &result.Failed,
		Skipped:   &result.Skipped,
		Duration:  &duration,
	})
}

// GetDisparoProgress implements api.ServerInterface.
func (h *Handler) GetDisparoProgress(w http.ResponseWriter, r *http.Request, disparoId uuid.UUID) {
	progress, err := h.service.Disparo.GetProgress(r.Context(), disparoId)
	if err != nil {
		h.handleDisparoError(w, r, err, errorMessageFailedToGetProgress)
		return
	}

	render.JSON(w, r, progress)
}

// GetDisparoDetails implements api.ServerInterface.
func (h *Handler) GetDisparoDetails(w http.ResponseWriter, r *http.Request, disparoId uuid.UUID, params api.GetDisparoDetailsParams) {
	page := defaultPage
	limit := defaultLimit

	if params.Page != nil && *params.Page >= 1 {
		page = *params.Page
	}

	if params.Limit != nil && *params.Limit >= 1 && *params.Limit <= maxLimit {
		limit = *params.Limit
	}

	if params.Status != nil && !params.Status.Valid() {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, errorMessageInvalidStatus)
		return
	}

	result, err := h.service.Disparo.ListDetails(r.Context(), disparoId, params.Status, page, limit)
	if err != nil {
		h.handleDisparoError(w, r, err, errorMessageFailedToListDetails)
		return
	}

	render.JSON(w, r, result)
}

// StartScheduler implements api.ServerInterface.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStarted,
		Message: schedulerMessageStarted,
	})
}

// StopScheduler implements api.ServerInterface.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStopped,
		Message: schedulerMessageStopped,
	})
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	if run := health.LastRun; run != nil {
		response.LastRunAt = &run.StartedAt
		if run.Error != "" {
			response.LastRunError = &run.Error
		}
	}

	// Degraded stays 200 so the service keeps receiving traffic.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// ParamErrorHandler answers parameter binding failures of the api wrapper.
func ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	sendError(w, r, http.StatusBadRequest, errorCodeInvalidParameter, err.Error())
}

func (h *Handler) handleDisparoError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, service.ErrDisparoNotFound) {
		h.sendError(w, r, http.StatusNotFound, errorCodeDisparoNotFound, errorMessageDisparoNotFound)
		return
	}

	h.logger.Error(message,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	sendError(w, r, statusCode, errorCode, message)
}

func sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	t := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &t,
	})
}
