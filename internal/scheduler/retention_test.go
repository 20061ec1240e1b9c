package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestRetentionService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetaRepo := mocks.NewMockMetaEntityRepository(ctrl)
	mockAnalyticsRepo := mocks.NewMockAnalyticsEntityRepository(ctrl)

	now := time.Date(2024, 6, 15, 4, 0, 0, 0, time.UTC)
	cutoff := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		setup    func()
		validate func(t *testing.T, result *RetentionResult, err error)
	}{
		{
			name: "Remove linhas anteriores ao corte nas duas tabelas",
			days: 30,
			setup: func() {
				mockMetaRepo.EXPECT().DeleteInsightsOlderThan(gomock.Any(), cutoff).Return(int64(12), nil)
				mockAnalyticsRepo.EXPECT().DeleteReportRowsOlderThan(gomock.Any(), cutoff).Return(int64(3), nil)
			},
			validate: func(t *testing.T, result *RetentionResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, cutoff, result.Cutoff)
				assert.Equal(t, int64(12), result.InsightsDeleted)
				assert.Equal(t, int64(3), result.ReportRowsDeleted)
			},
		},
		{
			name: "Erro em uma tabela não impede a outra",
			days: 30,
			setup: func() {
				mockMetaRepo.EXPECT().DeleteInsightsOlderThan(gomock.Any(), cutoff).Return(int64(0), errors.New("lock timeout"))
				mockAnalyticsRepo.EXPECT().DeleteReportRowsOlderThan(gomock.Any(), cutoff).Return(int64(7), nil)
			},
			validate: func(t *testing.T, result *RetentionResult, err error) {
				assert.ErrorContains(t, err, "lock timeout")
				require.NotNil(t, result)
				assert.Equal(t, int64(7), result.ReportRowsDeleted)
			},
		},
		{
			name:  "Dias inválidos não apagam nada",
			days:  0,
			setup: func() {},
			validate: func(t *testing.T, result *RetentionResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInvalidRetentionDays)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewRetentionService(mockMetaRepo, mockAnalyticsRepo, nil, config.Retention{Days: tt.days})
			service.now = func() time.Time { return now }
			tt.setup()

			result, err := service.RunOnce(context.Background())

			tt.validate(t, result, err)
		})
	}
}

func TestRetentionService_SkipsOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetaRepo := mocks.NewMockMetaEntityRepository(ctrl)
	mockAnalyticsRepo := mocks.NewMockAnalyticsEntityRepository(ctrl)

	service := NewRetentionService(mockMetaRepo, mockAnalyticsRepo, nil, config.Retention{Days: 30})
	service.running = true

	mockMetaRepo.EXPECT().DeleteInsightsOlderThan(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.RunOnce(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRetentionRunning)
}

func TestRetentionService_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewRetentionService(nil, nil, nil, config.Retention{Enabled: false, CronSchedule: "invalid"})
		assert.NoError(t, service.Start(ctx))
	})

	t.Run("Cron inválido", func(t *testing.T) {
		service := NewRetentionService(nil, nil, nil, config.Retention{Enabled: true, Days: 30, CronSchedule: "not a cron"})
		assert.Error(t, service.Start(ctx))
	})

	t.Run("Dias inválidos", func(t *testing.T) {
		service := NewRetentionService(nil, nil, nil, config.Retention{Enabled: true, Days: 0, CronSchedule: "0 4 * * *"})
		assert.ErrorIs(t, service.Start(ctx), ErrInvalidRetentionDays)
	})
}
