// Package yielding implementa o motor de yield: registro de estratégias, simulação de receita,
// análise de oportunidades e recomendações de overbooking.
package yielding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vfg2006/yield-manager-api/infrastructure/repository"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
)

const (
	DefaultCacheTTL  = 2 * time.Hour
	defaultCacheSize = 512
)

type YieldManager interface {
	Optimize(ctx context.Context, propertyID string, date time.Time) (*domain.RevenueOptimization, error)
	AnalyzeYieldOpportunities(ctx context.Context, propertyID string, date time.Time) (*domain.YieldDashboard, error)
	ComputeOverbooking(ctx context.Context, propertyID string, date time.Time) ([]domain.OverbookingRecommendation, error)
	CalculateBookingPace(ctx context.Context, propertyID string, date time.Time) ([]domain.BookingPace, error)
	ExecuteActions(ctx context.Context, propertyID string, actions []domain.Action) (int, error)
	RecordRun(ctx context.Context, result *domain.RevenueOptimization, trigger domain.OptimizationTrigger, actionsApplied int) error
	History(ctx context.Context, propertyID string, limit int) ([]*domain.OptimizationRun, error)
	ClearCache(propertyID string, date time.Time)
	ClearAllCache()

	CreateStrategy(ctx context.Context, strategy domain.Strategy) (*domain.Strategy, error)
	UpdateStrategy(ctx context.Context, id string, patch domain.StrategyPatch) (*domain.Strategy, error)
	DeleteStrategy(ctx context.Context, id string) error
	GetStrategies(ctx context.Context) []domain.Strategy
}

type Service struct {
	registry      *Registry
	source        DataSource
	executor      ActionExecutor
	runRepository repository.OptimizationRunRepository
	cache         *expirable.LRU[string, *domain.YieldDashboard]
	reduce        Reducer
	riskModel     RiskModel
	walkCost      float64
	now           func() time.Time
	logger        log.Logger
}

var _ YieldManager = (*Service)(nil)

// NewService cria o motor com um cache vazio. executor e runRepository podem ser nil.
func NewService(
	cfg config.Yield,
	registry *Registry,
	source DataSource,
	executor ActionExecutor,
	runRepository repository.OptimizationRunRepository,
) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}

	walkCost := cfg.WalkCost
	if walkCost <= 0 {
		walkCost = DefaultWalkCost
	}

	reduce := Reducer(ApplyAction)
	if cfg.Elasticity != 0 && cfg.Elasticity != DefaultElasticity {
		reduce = NewReducer(cfg.Elasticity)
	}

	if executor == nil {
		executor = LogExecutor{}
	}

	return &Service{
		registry:      registry,
		source:        source,
		executor:      executor,
		runRepository: runRepository,
		cache:         expirable.NewLRU[string, *domain.YieldDashboard](size, nil, ttl),
		reduce:        reduce,
		riskModel:     DefaultRiskModel,
		walkCost:      walkCost,
		now:           time.Now,
		logger:        log.L,
	}
}

// WithRiskModel substitui o modelo de risco padrão
func (s *Service) WithRiskModel(model RiskModel) *Service {
	s.riskModel = model
	return s
}

// WithClock substitui o relógio usado em lead time e carimbos de data
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithLogger(logger log.Logger) *Service {
	s.logger = logger
	return s
}

func (s *Service) Registry() *Registry {
	return s.registry
}

func (s *Service) fetchMetrics(ctx context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	metrics, err := s.source.FetchMetrics(ctx, propertyID, date)
	if err != nil {
		return domain.MetricsSnapshot{}, asUpstreamError(err, "metrics")
	}
	return metrics.Recalculate(), nil
}

// Optimize simula as estratégias aplicáveis sobre as métricas atuais da propriedade
func (s *Service) Optimize(ctx context.Context, propertyID string, date time.Time) (*domain.RevenueOptimization, error) {
	metrics, err := s.fetchMetrics(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	return s.optimize(ctx, propertyID, date, metrics), nil
}

func (s *Service) optimize(ctx context.Context, propertyID string, date time.Time, metrics domain.MetricsSnapshot) *domain.RevenueOptimization {
	logger := s.logger.WithContext(ctx)

	strategies, defaults := s.registry.Applicable(ctx, EvaluationContext{
		Date:    date,
		Metrics: metrics,
		Now:     s.now(),
	})

	for _, match := range defaults {
		logger.WithFields(log.Fields{
			"property_id":     propertyID,
			"strategy_id":     match.StrategyID,
			"condition_types": match.ConditionTypes,
		}).Warn("Estratégia aplicada com condições aceitas por padrão")
	}

	optimized := Simulate(metrics, strategies, s.reduce)

	current := metrics.TotalRevenue
	uplift := optimized.TotalRevenue - current

	var upliftPercent float64
	if current > 0 {
		upliftPercent = uplift / current * 100
	}

	if strategies == nil {
		strategies = make([]domain.Strategy, 0)
	}

	result := &domain.RevenueOptimization{
		PropertyID:       propertyID,
		Date:             date,
		CurrentRevenue:   current,
		OptimizedRevenue: optimized.TotalRevenue,
		Uplift:           uplift,
		UpliftPercent:    upliftPercent,
		Strategies:       strategies,
		DefaultMatches:   defaults,
		Forecast: domain.RevenueForecast{
			Occupancy: optimized.OccupancyRate,
			ADR:       optimized.AverageDailyRate,
			RevPAR:    optimized.RevPAR,
		},
		Risks:            s.riskModel(metrics, optimized, strategies),
		CurrentMetrics:   metrics,
		OptimizedMetrics: optimized,
	}

	logger.WithFields(log.Fields{
		"property_id":    propertyID,
		"date":           date.Format(time.DateOnly),
		"strategies":     len(strategies),
		"uplift":         uplift,
		"uplift_percent": upliftPercent,
		"synthetic":      metrics.Synthetic,
	}).Info("Otimização de receita calculada")

	return result
}

// CalculateBookingPace compara as reservas acumuladas com o histórico em cada horizonte
func (s *Service) CalculateBookingPace(ctx context.Context, propertyID string, date time.Time) ([]domain.BookingPace, error) {
	pace := make([]domain.BookingPace, 0, len(PaceHorizons))

	for _, daysOut := range PaceHorizons {
		asOf := date.AddDate(0, 0, -daysOut)

		bookings, err := s.source.FetchBookingsToDate(ctx, propertyID, date, asOf)
		if err != nil {
			return nil, asUpstreamError(err, "bookings_to_date")
		}

		historical, err := s.source.FetchHistoricalPace(ctx, propertyID, date, daysOut)
		if err != nil {
			return nil, asUpstreamError(err, "historical_pace")
		}

		pace = append(pace, NewBookingPace(date, daysOut, bookings, historical))
	}

	return pace, nil
}

// ComputeOverbooking calcula a recomendação de overbooking por tipo de quarto
func (s *Service) ComputeOverbooking(ctx context.Context, propertyID string, date time.Time) ([]domain.OverbookingRecommendation, error) {
	metrics, err := s.fetchMetrics(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	return s.computeOverbooking(ctx, propertyID, date, metrics)
}

func (s *Service) computeOverbooking(ctx context.Context, propertyID string, date time.Time, metrics domain.MetricsSnapshot) ([]domain.OverbookingRecommendation, error) {
	roomTypes, err := s.source.FetchRoomTypes(ctx, propertyID)
	if err != nil {
		return nil, asUpstreamError(err, "room_types")
	}

	recommendations := make([]domain.OverbookingRecommendation, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		noShows, err := s.source.FetchHistoricalNoShows(ctx, propertyID, roomType.ID, date)
		if err != nil {
			return nil, asUpstreamError(err, "historical_no_shows")
		}

		cancellations, err := s.source.FetchHistoricalCancellations(ctx, propertyID, roomType.ID, date)
		if err != nil {
			return nil, asUpstreamError(err, "historical_cancellations")
		}

		averageRate := roomType.BaseRate
		if averageRate <= 0 {
			averageRate = metrics.AverageDailyRate
		}

		recommendations = append(recommendations, NewOverbookingRecommendation(roomType, noShows, cancellations, averageRate, s.walkCost))
	}

	return recommendations, nil
}

// AnalyzeYieldOpportunities monta o painel de yield; o resultado fica em cache por propriedade e data
func (s *Service) AnalyzeYieldOpportunities(ctx context.Context, propertyID string, date time.Time) (*domain.YieldDashboard, error) {
	key := cacheKey(propertyID, date)
	if dashboard, ok := s.cache.Get(key); ok {
		return dashboard, nil
	}

	ctx, report := WithFallbackReport(ctx)

	metrics, err := s.fetchMetrics(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	pace, err := s.CalculateBookingPace(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	overbooking, err := s.computeOverbooking(ctx, propertyID, date, metrics)
	if err != nil {
		return nil, err
	}

	now := s.now()
	opportunities := IdentifyOpportunities(metrics, pace)
	syntheticSources := report.Sources()

	dashboard := &domain.YieldDashboard{
		PropertyID:       propertyID,
		Date:             date,
		Metrics:          metrics,
		BookingPace:      pace,
		Opportunities:    opportunities,
		Alerts:           GenerateAlerts(metrics, pace, opportunities, now),
		Overbooking:      overbooking,
		Optimization:     s.optimize(ctx, propertyID, date, metrics),
		Degraded:         metrics.Synthetic || len(syntheticSources) > 0,
		SyntheticSources: syntheticSources,
		GeneratedAt:      now,
	}

	s.cache.Add(key, dashboard)
	return dashboard, nil
}

// ActionsForCadence seleciona as ações a executar em um ciclo da cadência informada.
// Ações imediatas entram em todos os ciclos.
func ActionsForCadence(strategies []domain.Strategy, cadence domain.ExecutionCadence) []domain.Action {
	var actions []domain.Action
	for _, strategy := range strategies {
		for _, action := range strategy.Actions {
			if action.Execution == cadence || action.Execution == domain.CadenceImmediate {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

// ExecuteActions envia as ações ao sistema de precificação e retorna quantas foram aplicadas
func (s *Service) ExecuteActions(ctx context.Context, propertyID string, actions []domain.Action) (int, error) {
	var (
		applied int
		errs    []error
	)

	for _, action := range actions {
		if err := s.executor.ExecuteAction(ctx, propertyID, action); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", action.Type, err))
			continue
		}
		applied++
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrActionExecutor, errors.Join(errs...))
		return applied, NewYieldError(err, apiErrors.ErrExternalService, fmt.Sprintf("%d ação(ões) falharam", len(errs)))
	}

	return applied, nil
}

// RecordRun grava a execução no histórico, quando há repositório configurado
func (s *Service) RecordRun(ctx context.Context, result *domain.RevenueOptimization, trigger domain.OptimizationTrigger, actionsApplied int) error {
	if s.runRepository == nil || result == nil {
		return nil
	}

	run := domain.NewOptimizationRun(result, trigger)
	run.ActionsApplied = actionsApplied

	if err := s.runRepository.SaveRun(ctx, run); err != nil {
		return NewYieldError(err, apiErrors.ErrDatabaseOperation, "falha ao registrar execução")
	}
	return nil
}

func (s *Service) History(ctx context.Context, propertyID string, limit int) ([]*domain.OptimizationRun, error) {
	if s.runRepository == nil {
		return []*domain.OptimizationRun{}, nil
	}

	runs, err := s.runRepository.ListRuns(ctx, propertyID, limit)
	if err != nil {
		return nil, NewYieldError(err, apiErrors.ErrDatabaseOperation, "falha ao listar histórico")
	}
	return runs, nil
}

// ClearCache invalida o painel de uma propriedade em uma data
func (s *Service) ClearCache(propertyID string, date time.Time) {
	s.cache.Remove(cacheKey(propertyID, date))
}

func (s *Service) ClearAllCache() {
	s.cache.Purge()
}

func (s *Service) CreateStrategy(ctx context.Context, strategy domain.Strategy) (*domain.Strategy, error) {
	id, err := s.registry.Create(ctx, strategy)
	if err != nil {
		return nil, err
	}

	created, _ := s.registry.Get(id)
	s.logger.WithContext(ctx).WithField("strategy_id", id).Info("Estratégia criada")
	return &created, nil
}

func (s *Service) UpdateStrategy(ctx context.Context, id string, patch domain.StrategyPatch) (*domain.Strategy, error) {
	updated, err := s.registry.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithField("strategy_id", id).Info("Estratégia atualizada")
	return &updated, nil
}

func (s *Service) DeleteStrategy(ctx context.Context, id string) error {
	if err := s.registry.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithContext(ctx).WithField("strategy_id", id).Info("Estratégia removida")
	return nil
}

// GetStrategies lista as estratégias ordenadas por prioridade
func (s *Service) GetStrategies(_ context.Context) []domain.Strategy {
	strategies := s.registry.List()
	SortByPriority(strategies)
	return strategies
}

func cacheKey(propertyID string, date time.Time) string {
	return propertyID + ":" + date.Format(time.DateOnly)
}

// asUpstreamError mantém erros já classificados e classifica os demais como falha de provedor
func asUpstreamError(err error, what string) error {
	var yieldErr *YieldError
	if errors.As(err, &yieldErr) {
		return err
	}
	return newUpstreamError(err, what)
}
