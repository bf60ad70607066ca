package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/repository"
)

// Keys of the configuracoes table read by the drainer.
const (
	SettingGatewayBaseURL = "gateway_base_url"
	SettingGatewayAPIKey  = "gateway_api_key"

	settingsCacheKey = "disparo:settings:gateway"
)

// GatewaySettings are the system-wide gateway coordinates.
type GatewaySettings struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}

// Complete reports whether both values are present.
func (s *GatewaySettings) Complete() bool {
	return s.BaseURL != "" && s.APIKey != ""
}

type settingsProvider struct {
	cfg         *config.Config
	repo        repository.Repository
	redisClient *redis.Client
	ttl         time.Duration
	logger      *zap.Logger
}

// NewSettingsProvider reads gateway settings from the configuracoes table,
// caches them in Redis and falls back to the config file per key.
func NewSettingsProvider(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) SettingsProvider {
	return &settingsProvider{
		cfg:         cfg,
		repo:        repo,
		redisClient: redisClient,
		ttl:         time.Duration(cfg.Settings.CacheTTLSeconds) * time.Second,
		logger:      logger,
	}
}

func (p *settingsProvider) GatewaySettings(ctx context.Context) (*GatewaySettings, error) {
	if cached, ok := p.fromCache(ctx); ok {
		return cached, nil
	}

	stored, err := p.repo.Settings().GetSettings(ctx, SettingGatewayBaseURL, SettingGatewayAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway settings: %w", err)
	}

	settings := &GatewaySettings{
		BaseURL: firstNonEmpty(stored[SettingGatewayBaseURL], p.cfg.Gateway.BaseURL),
		APIKey:  firstNonEmpty(stored[SettingGatewayAPIKey], p.cfg.Gateway.APIKey),
	}

	// Incomplete settings are not cached so a fix in the table applies on the next pass.
	if settings.Complete() {
		p.toCache(ctx, settings)
	}

	return settings, nil
}

// Invalidate drops the cached settings.
func (p *settingsProvider) Invalidate(ctx context.Context) error {
	if err := p.redisClient.Del(ctx, settingsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate gateway settings: %w", err)
	}
	return nil
}

func (p *settingsProvider) fromCache(ctx context.Context) (*GatewaySettings, bool) {
	if p.ttl <= 0 {
		return nil, false
	}

	raw, err := p.redisClient.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn("Failed to read gateway settings from Redis", zap.Error(err))
		}
		return nil, false
	}

	var settings GatewaySettings
	if err := json.Unmarshal(raw, &settings); err != nil || !settings.Complete() {
		return nil, false
	}

	return &settings, true
}

func (p *settingsProvider) toCache(ctx context.Context, settings *GatewaySettings) {
	if p.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}

	if err := p.redisClient.Set(ctx, settingsCacheKey, raw, p.ttl).Err(); err != nil {
		p.logger.Warn("Failed to cache gateway settings in Redis", zap.Error(err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
