package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/metrics"
)

var (
	ErrRetentionRunning     = errors.New("retention already running")
	ErrInvalidRetentionDays = errors.New("retention days must be positive")
)

// RetentionResult resume uma execução da limpeza
type RetentionResult struct {
	Cutoff            time.Time `json:"cutoff"`
	InsightsDeleted   int64     `json:"insights_deleted"`
	ReportRowsDeleted int64     `json:"report_rows_deleted"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
}

// RetentionService remove linhas diárias antigas de campaign_insights e google_analytics_data
type RetentionService struct {
	scheduler     *gocron.Scheduler
	config        config.Retention
	metaRepo      repository.MetaEntityRepository
	analyticsRepo repository.AnalyticsEntityRepository
	recorder      metrics.Recorder
	now           func() time.Time

	running   bool
	runMutex  sync.Mutex
	lastRunAt time.Time
}

func NewRetentionService(
	metaRepo repository.MetaEntityRepository,
	analyticsRepo repository.AnalyticsEntityRepository,
	recorder metrics.Recorder,
	cfg config.Retention,
) *RetentionService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"days":          cfg.Days,
		"enabled":       cfg.Enabled,
	}).Info("retention: configuration loaded")

	return &RetentionService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        cfg,
		metaRepo:      metaRepo,
		analyticsRepo: analyticsRepo,
		recorder:      recorder,
		now:           time.Now,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto for cancelado
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("retention: disabled by configuration")
		return nil
	}

	if s.config.Days <= 0 {
		return ErrInvalidRetentionDays
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, ErrRetentionRunning) {
			logrus.WithError(err).Error("retention: run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("retention: failed to schedule %q: %w", s.config.CronSchedule, err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("retention: scheduler started")

	go func() {
		<-ctx.Done()
		logrus.Info("retention: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa a limpeza uma vez. Execuções sobrepostas retornam ErrRetentionRunning.
// Uma tabela com erro não impede a limpeza da outra.
func (s *RetentionService) RunOnce(ctx context.Context) (*RetentionResult, error) {
	if s.config.Days <= 0 {
		return nil, ErrInvalidRetentionDays
	}

	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("retention: previous run still in progress, skipping")
		return nil, ErrRetentionRunning
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	startedAt := s.now().UTC()
	result := &RetentionResult{
		Cutoff:    startedAt.Truncate(24*time.Hour).AddDate(0, 0, -s.config.Days),
		StartedAt: startedAt,
	}

	var errs []error

	deleted, err := s.metaRepo.DeleteInsightsOlderThan(ctx, result.Cutoff)
	if err != nil {
		errs = append(errs, err)
	} else {
		result.InsightsDeleted = deleted
		s.recorder.RetentionDeleted("campaign_insights", deleted)
	}

	deleted, err = s.analyticsRepo.DeleteReportRowsOlderThan(ctx, result.Cutoff)
	if err != nil {
		errs = append(errs, err)
	} else {
		result.ReportRowsDeleted = deleted
		s.recorder.RetentionDeleted("google_analytics_data", deleted)
	}

	result.CompletedAt = s.now().UTC()
	s.lastRunAt = result.CompletedAt

	logrus.WithFields(logrus.Fields{
		"cutoff":              result.Cutoff.Format(time.DateOnly),
		"insights_deleted":    result.InsightsDeleted,
		"report_rows_deleted": result.ReportRowsDeleted,
		"duration":            result.CompletedAt.Sub(startedAt).String(),
		"errors":              len(errs),
	}).Info("retention: run completed")

	return result, errors.Join(errs...)
}
