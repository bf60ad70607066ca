package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/disparo-queue/internal/config"
	repomocks "github.com/popeskul/disparo-queue/internal/repository/mocks"
	"github.com/popeskul/disparo-queue/internal/service"
)

func settingsConfig() *config.Config {
	return &config.Config{
		Gateway: config.GatewayConfig{
			BaseURL: "https://file.example.com",
			APIKey:  "file-key",
		},
		Settings: config.SettingsConfig{CacheTTLSeconds: 300},
	}
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:9999", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSettingsProvider_GatewaySettings(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func() *config.Config
		stored   map[string]string
		expected service.GatewaySettings
		complete bool
	}{
		{
			name:     "config file fallback",
			cfg:      settingsConfig,
			stored:   map[string]string{},
			expected: service.GatewaySettings{BaseURL: "https://file.example.com", APIKey: "file-key"},
			complete: true,
		},
		{
			name: "table overrides config per key",
			cfg:  settingsConfig,
			stored: map[string]string{
				service.SettingGatewayAPIKey: "table-key",
			},
			expected: service.GatewaySettings{BaseURL: "https://file.example.com", APIKey: "table-key"},
			complete: true,
		},
		{
			name: "nothing configured",
			cfg: func() *config.Config {
				return &config.Config{}
			},
			stored:   map[string]string{},
			expected: service.GatewaySettings{},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockRepository(ctrl)
			settingsRepo := repomocks.NewMockSettingsRepository(ctrl)
			repo.EXPECT().Settings().Return(settingsRepo)
			settingsRepo.EXPECT().
				GetSettings(gomock.Any(), service.SettingGatewayBaseURL, service.SettingGatewayAPIKey).
				Return(tt.stored, nil)

			provider := service.NewSettingsProvider(tt.cfg(), repo, unreachableRedis(t), zap.NewNop())

			settings, err := provider.GatewaySettings(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *settings)
			assert.Equal(t, tt.complete, settings.Complete())
		})
	}
}

func TestSettingsProvider_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRepository(ctrl)
	settingsRepo := repomocks.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Settings().Return(settingsRepo)
	settingsRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	provider := service.NewSettingsProvider(settingsConfig(), repo, unreachableRedis(t), zap.NewNop())

	settings, err := provider.GatewaySettings(context.Background())
	assert.Nil(t, settings)
	assert.ErrorContains(t, err, "failed to load gateway settings")
}

func TestSettingsProvider_Cache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = redisClient.Close() })

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRepository(ctrl)
	settingsRepo := repomocks.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	provider := service.NewSettingsProvider(settingsConfig(), repo, redisClient, zap.NewNop())

	// One read fills the cache; the second is served from Redis.
	settingsRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]string{service.SettingGatewayAPIKey: "table-key"}, nil).Times(1)

	for i := 0; i < 2; i++ {
		settings, err := provider.GatewaySettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "table-key", settings.APIKey)
	}

	ttl, err := redisClient.TTL(ctx, "disparo:settings:gateway").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	require.NoError(t, provider.Invalidate(ctx))

	settingsRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]string{service.SettingGatewayAPIKey: "rotated-key"}, nil).Times(1)

	settings, err := provider.GatewaySettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated-key", settings.APIKey)
}
