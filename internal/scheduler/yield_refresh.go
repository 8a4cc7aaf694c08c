package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

const (
	defaultHorizonDays       = 14
	defaultMaxConcurrentJobs = 3
	actionRetryAttempts      = 3
)

// YieldRefreshConfig representa a configuração do recálculo periódico de yield
type YieldRefreshConfig struct {
	HourlyCron        string
	DailyCron         string
	Properties        []string
	HorizonDays       int
	MaxConcurrentJobs int
	AutoApply         bool
	Enabled           bool
}

// RefreshSummary resume uma execução do recálculo
type RefreshSummary struct {
	Trigger        domain.OptimizationTrigger `json:"trigger"`
	Properties     int                        `json:"properties"`
	Optimized      int                        `json:"optimized"`
	Failed         int                        `json:"failed"`
	ActionsApplied int                        `json:"actions_applied"`
	Skipped        bool                       `json:"skipped"`
}

// YieldRefreshService reexecuta o motor de yield nas cadências horária e diária
type YieldRefreshService struct {
	scheduler           *gocron.Scheduler
	config              YieldRefreshConfig
	yieldService        yielding.YieldManager
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         RefreshSummary
	retryDelay          time.Duration
	now                 func() time.Time
}

// NewYieldRefreshService cria o agendador a partir da configuração global
func NewYieldRefreshService(yieldService yielding.YieldManager, appConfig config.YieldRefresh) *YieldRefreshService {
	refreshConfig := YieldRefreshConfig{
		HourlyCron:        appConfig.HourlyCron,
		DailyCron:         appConfig.DailyCron,
		Properties:        appConfig.Properties,
		HorizonDays:       appConfig.HorizonDays,
		MaxConcurrentJobs: appConfig.MaxConcurrentJobs,
		AutoApply:         appConfig.AutoApply,
		Enabled:           appConfig.Enabled,
	}

	if refreshConfig.HorizonDays <= 0 {
		refreshConfig.HorizonDays = defaultHorizonDays
	}
	if refreshConfig.MaxConcurrentJobs <= 0 {
		refreshConfig.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}

	logrus.WithFields(logrus.Fields{
		"hourly_cron":         refreshConfig.HourlyCron,
		"daily_cron":          refreshConfig.DailyCron,
		"properties":          len(refreshConfig.Properties),
		"horizon_days":        refreshConfig.HorizonDays,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"auto_apply":          refreshConfig.AutoApply,
		"enabled":             refreshConfig.Enabled,
	}).Info("Configuração do recálculo de yield carregada")

	return &YieldRefreshService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       refreshConfig,
		yieldService: yieldService,
		retryDelay:   time.Second,
		now:          time.Now,
	}
}

// Start agenda os jobs horário e diário
func (s *YieldRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recálculo periódico de yield desabilitado por configuração")
		return nil
	}

	if len(s.config.Properties) == 0 {
		logrus.Warn("Recálculo de yield habilitado sem propriedades configuradas")
	}

	jobs := []struct {
		cron    string
		trigger domain.OptimizationTrigger
	}{
		{s.config.HourlyCron, domain.TriggerHourly},
		{s.config.DailyCron, domain.TriggerDaily},
	}

	for _, job := range jobs {
		if job.cron == "" {
			continue
		}

		trigger := job.trigger
		_, err := s.scheduler.Cron(job.cron).Do(func() {
			s.Refresh(ctx, trigger)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar recálculo de yield %s: %w", trigger, err)
		}

		logrus.WithFields(logrus.Fields{
			"cron":    job.cron,
			"trigger": trigger,
		}).Info("Recálculo de yield agendado")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de yield")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh recalcula todas as propriedades no horizonte configurado.
// Se outra execução estiver em andamento, retorna imediatamente com Skipped.
func (s *YieldRefreshService) Refresh(ctx context.Context, trigger domain.OptimizationTrigger) RefreshSummary {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("trigger", trigger).Info("Recálculo de yield já em andamento, ignorando")
		return RefreshSummary{Trigger: trigger, Skipped: true}
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	summary := RefreshSummary{Trigger: trigger, Properties: len(s.config.Properties)}
	dates := s.getDatesToProcess()

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, s.config.MaxConcurrentJobs)
	)

	for _, propertyID := range s.config.Properties {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(propertyID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			for _, date := range dates {
				applied, err := s.refreshPropertyDate(ctx, propertyID, date, trigger)

				mu.Lock()
				if err != nil {
					summary.Failed++
				} else {
					summary.Optimized++
				}
				summary.ActionsApplied += applied
				mu.Unlock()
			}
		}(propertyID)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"trigger":         trigger,
		"duration":        time.Since(startTime).String(),
		"properties":      summary.Properties,
		"optimized":       summary.Optimized,
		"failed":          summary.Failed,
		"actions_applied": summary.ActionsApplied,
	}).Info("Recálculo de yield concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	return summary
}

// getDatesToProcess devolve as datas de hoje até o fim do horizonte
func (s *YieldRefreshService) getDatesToProcess() []time.Time {
	today := utils.StartOfDay(s.now())
	dates := make([]time.Time, s.config.HorizonDays)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}

func (s *YieldRefreshService) refreshPropertyDate(ctx context.Context, propertyID string, date time.Time, trigger domain.OptimizationTrigger) (int, error) {
	logger := logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"date":        date.Format(time.DateOnly),
		"trigger":     trigger,
	})

	s.yieldService.ClearCache(propertyID, date)

	dashboard, err := s.yieldService.AnalyzeYieldOpportunities(ctx, propertyID, date)
	if err != nil {
		logger.WithError(err).Error("Erro ao recalcular painel de yield")
		return 0, err
	}

	result := dashboard.Optimization
	if result == nil {
		result, err = s.yieldService.Optimize(ctx, propertyID, date)
		if err != nil {
			logger.WithError(err).Error("Erro ao otimizar receita")
			return 0, err
		}
	}

	applied := 0
	if s.config.AutoApply {
		applied = s.applyActions(ctx, logger, result, actionCadence(trigger))
	}

	if err := s.yieldService.RecordRun(ctx, result, trigger, applied); err != nil {
		logger.WithError(err).Warn("Erro ao registrar execução de otimização")
	}

	logger.WithFields(logrus.Fields{
		"strategies":      len(result.Strategies),
		"uplift_percent":  utils.RoundWithTwoDecimalPlace(result.UpliftPercent),
		"actions_applied": applied,
		"alerts":          len(dashboard.Alerts),
	}).Debug("Propriedade recalculada")

	return applied, nil
}

// applyActions envia ao PMS as ações da cadência, repetindo cada ação que falhar.
// Snapshots sintéticos nunca geram ações reais.
func (s *YieldRefreshService) applyActions(ctx context.Context, logger *logrus.Entry, result *domain.RevenueOptimization, cadence domain.ExecutionCadence) int {
	if result.CurrentMetrics.Synthetic {
		logger.Warn("Métricas sintéticas, ações não serão aplicadas")
		return 0
	}

	applied := 0
	for _, action := range yielding.ActionsForCadence(result.Strategies, cadence) {
		err := retry.Do(
			func() error {
				n, err := s.yieldService.ExecuteActions(ctx, result.PropertyID, []domain.Action{action})
				applied += n
				return err
			},
			retry.Attempts(actionRetryAttempts),
			retry.LastErrorOnly(true),
			retry.Delay(s.retryDelay),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logger.WithFields(logrus.Fields{
					"action_type": action.Type,
					"attempt":     n + 1,
				}).WithError(err).Warn("Nova tentativa de aplicar ação")
			}),
		)
		if err != nil {
			logger.WithField("action_type", action.Type).WithError(err).Error("Ação não aplicada após novas tentativas")
		}
	}

	return applied
}

// actionCadence define quais ações cada gatilho executa; o manual aplica apenas as imediatas
func actionCadence(trigger domain.OptimizationTrigger) domain.ExecutionCadence {
	switch trigger {
	case domain.TriggerHourly:
		return domain.CadenceHourly
	case domain.TriggerDaily:
		return domain.CadenceDaily
	default:
		return domain.CadenceImmediate
	}
}

// TriggerManualSync inicia manualmente um recálculo; retorna false se já houver um em andamento
func (s *YieldRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de yield já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de yield")
	go s.Refresh(context.Background(), domain.TriggerManual)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *YieldRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"hourly_cron":            s.config.HourlyCron,
		"daily_cron":             s.config.DailyCron,
		"properties":             s.config.Properties,
		"horizon_days":           s.config.HorizonDays,
		"max_concurrent":         s.config.MaxConcurrentJobs,
		"auto_apply":             s.config.AutoApply,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}
