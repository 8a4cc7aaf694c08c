package yielding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/yield-manager-api/infrastructure/repository"
	repomocks "github.com/vfg2006/yield-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding/mocks"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"go.uber.org/mock/gomock"
)

// Quarta-feira, fora do fim de semana
var scenarioDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

// countingSource usa dados sintéticos, exceto métricas fixas, e conta as consultas de métricas
type countingSource struct {
	*SyntheticSource
	mu      sync.Mutex
	metrics domain.MetricsSnapshot
	calls   int
}

func (c *countingSource) FetchMetrics(_ context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	m := c.metrics
	m.PropertyID = propertyID
	m.Date = date
	return m, nil
}

func (c *countingSource) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newTestService(source DataSource, executor ActionExecutor, runs *repomocks.MockOptimizationRunRepository) *Service {
	registry := newTestRegistry()
	registry.Seed(DefaultStrategies(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)

	var runRepository repository.OptimizationRunRepository
	if runs != nil {
		runRepository = runs
	}

	return NewService(config.Yield{}, registry, source, executor, runRepository).
		WithClock(func() time.Time { return fixedNow }).
		WithLogger(log.Discard())
}

func TestService_Optimize_HighOccupancyScenario(t *testing.T) {
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.90, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 90},
	}
	service := newTestService(source, nil, nil)

	result, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	require.Len(t, result.Strategies, 1)
	assert.Equal(t, HighOccupancyStrategyID, result.Strategies[0].ID)

	assert.InDelta(t, 13500.0, result.CurrentRevenue, 1e-9)
	assert.InDelta(t, 13035.0, result.OptimizedRevenue, 1e-6)
	assert.InDelta(t, -465.0, result.Uplift, 1e-6)
	assert.Less(t, result.UpliftPercent, 0.0)
	assert.InDelta(t, -465.0/13500*100, result.UpliftPercent, 1e-9)

	assert.InDelta(t, 0.792, result.Forecast.Occupancy, 1e-9)
	assert.InDelta(t, 165.0, result.Forecast.ADR, 1e-9)
	assert.InDelta(t, 0.792*165, result.Forecast.RevPAR, 1e-9)
	assert.Equal(t, 79, result.OptimizedMetrics.SoldRooms)

	assert.Equal(t, domain.RiskAssessment{DemandDestruction: 0.1, CompetitiveLoss: 0.05, BrandImpact: 0.02}, result.Risks)
	assert.Empty(t, result.DefaultMatches)
}

func TestService_Optimize_NoMatchKeepsRevenue(t *testing.T) {
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.5, AverageDailyRate: 100, AvailableRooms: 100, SoldRooms: 50},
	}
	service := newTestService(source, nil, nil)

	result, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	assert.NotNil(t, result.Strategies)
	assert.Empty(t, result.Strategies)
	assert.Equal(t, result.CurrentRevenue, result.OptimizedRevenue)
	assert.Equal(t, 0.0, result.UpliftPercent)
}

func TestService_Optimize_ZeroRevenue(t *testing.T) {
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.9, AverageDailyRate: 0, AvailableRooms: 100, SoldRooms: 90},
	}
	service := newTestService(source, nil, nil)

	result, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.UpliftPercent)
}

func TestService_Optimize_CustomRiskModel(t *testing.T) {
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.9, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 90},
	}

	var received []domain.Strategy
	service := newTestService(source, nil, nil).
		WithRiskModel(func(current, optimized domain.MetricsSnapshot, strategies []domain.Strategy) domain.RiskAssessment {
			received = strategies
			return domain.RiskAssessment{DemandDestruction: 1 - optimized.OccupancyRate/current.OccupancyRate}
		})

	result, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	assert.Len(t, received, 1)
	assert.InDelta(t, 0.12, result.Risks.DemandDestruction, 1e-9)
}

func TestService_Optimize_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockDataSource(ctrl)
	primary.EXPECT().
		FetchMetrics(gomock.Any(), "hotel-centro", scenarioDate).
		Return(domain.MetricsSnapshot{}, errors.New("connection refused"))

	service := newTestService(NewFallbackSource(primary, nil, false, time.Second), nil, nil)

	_, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	assert.True(t, IsUpstreamError(err))
}

func TestService_AnalyzeYieldOpportunities(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.96, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 96, Synthetic: true},
	}
	service := newTestService(source, nil, nil)

	dashboard, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
	require.NoError(t, err)

	assert.Equal(t, "hotel-centro", dashboard.PropertyID)
	assert.Len(t, dashboard.BookingPace, len(PaceHorizons))
	assert.Len(t, dashboard.Overbooking, 3)
	assert.NotEmpty(t, dashboard.Opportunities)
	assert.NotNil(t, dashboard.Optimization)
	assert.True(t, dashboard.Degraded)
	assert.Equal(t, fixedNow, dashboard.GeneratedAt)

	shortage := 0
	for _, alert := range dashboard.Alerts {
		if alert.Type == domain.AlertInventoryShortage {
			shortage++
		}
	}
	assert.Equal(t, 1, shortage)

	t.Run("Segunda chamada usa o cache", func(t *testing.T) {
		calls := source.Calls()
		cached, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
		require.NoError(t, err)
		assert.Same(t, dashboard, cached)
		assert.Equal(t, calls, source.Calls())
	})

	t.Run("Outra data não usa o cache", func(t *testing.T) {
		calls := source.Calls()
		_, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Greater(t, source.Calls(), calls)
	})

	t.Run("ClearCache força novo cálculo", func(t *testing.T) {
		service.ClearCache("hotel-centro", scenarioDate)
		fresh, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
		require.NoError(t, err)
		assert.NotSame(t, dashboard, fresh)
	})

	t.Run("ClearAllCache limpa todas as entradas", func(t *testing.T) {
		service.ClearAllCache()
		calls := source.Calls()
		_, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
		require.NoError(t, err)
		assert.Greater(t, source.Calls(), calls)
	})
}

func TestService_AnalyzeYieldOpportunities_PartialFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockDataSource(ctrl)

	primary.EXPECT().FetchMetrics(gomock.Any(), "hotel-centro", scenarioDate).Return(domain.MetricsSnapshot{
		PropertyID: "hotel-centro", Date: scenarioDate, OccupancyRate: 0.7, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 70,
	}, nil)
	primary.EXPECT().FetchBookingsToDate(gomock.Any(), "hotel-centro", scenarioDate, gomock.Any()).Return(0, errors.New("timeout")).Times(len(PaceHorizons))
	primary.EXPECT().FetchHistoricalPace(gomock.Any(), "hotel-centro", scenarioDate, gomock.Any()).Return(40.0, nil).Times(len(PaceHorizons))
	primary.EXPECT().FetchRoomTypes(gomock.Any(), "hotel-centro").Return([]domain.RoomType{{ID: "std", Name: "Standard", Inventory: 80, BaseRate: 150}}, nil)
	primary.EXPECT().FetchHistoricalNoShows(gomock.Any(), "hotel-centro", "std", scenarioDate).Return(0.05, nil)
	primary.EXPECT().FetchHistoricalCancellations(gomock.Any(), "hotel-centro", "std", scenarioDate).Return(0.1, nil)

	source := NewFallbackSource(primary, NewSyntheticSource(), true, time.Second).WithLogger(log.Discard())
	service := newTestService(source, nil, nil)

	dashboard, err := service.AnalyzeYieldOpportunities(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	assert.False(t, dashboard.Metrics.Synthetic)
	assert.True(t, dashboard.Degraded)
	assert.Equal(t, []string{"bookings_to_date"}, dashboard.SyntheticSources)
}

func TestService_AnalyzeYieldOpportunities_NoFallback(t *testing.T) {
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.7, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 70},
	}
	service := newTestService(source, nil, nil)

	dashboard, err := service.AnalyzeYieldOpportunities(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	assert.False(t, dashboard.Degraded)
	assert.Empty(t, dashboard.SyntheticSources)
}

func TestService_CacheExpires(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.7, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 70},
	}

	registry := newTestRegistry()
	service := NewService(config.Yield{CacheTTL: 30 * time.Millisecond}, registry, source, nil, nil).WithLogger(log.Discard())

	_, err := service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
	require.NoError(t, err)
	calls := source.Calls()

	time.Sleep(80 * time.Millisecond)

	_, err = service.AnalyzeYieldOpportunities(ctx, "hotel-centro", scenarioDate)
	require.NoError(t, err)
	assert.Greater(t, source.Calls(), calls)
}

func TestService_ComputeOverbooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().
		FetchMetrics(gomock.Any(), "hotel-centro", scenarioDate).
		Return(domain.MetricsSnapshot{OccupancyRate: 0.8, AverageDailyRate: 180, AvailableRooms: 40, SoldRooms: 32}, nil)
	source.EXPECT().
		FetchRoomTypes(gomock.Any(), "hotel-centro").
		Return([]domain.RoomType{
			{ID: "std", Name: "Standard", Inventory: 30, BaseRate: 150},
			{ID: "lux", Name: "Luxo", Inventory: 10},
		}, nil)
	source.EXPECT().FetchHistoricalNoShows(gomock.Any(), "hotel-centro", "std", scenarioDate).Return(5.0, nil)
	source.EXPECT().FetchHistoricalCancellations(gomock.Any(), "hotel-centro", "std", scenarioDate).Return(10.0, nil)
	source.EXPECT().FetchHistoricalNoShows(gomock.Any(), "hotel-centro", "lux", scenarioDate).Return(2.5, nil)
	source.EXPECT().FetchHistoricalCancellations(gomock.Any(), "hotel-centro", "lux", scenarioDate).Return(0.0, nil)

	service := NewService(config.Yield{WalkCost: 300}, newTestRegistry(), source, nil, nil).WithLogger(log.Discard())

	result, err := service.ComputeOverbooking(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 13, result[0].RecommendedOverbooking)
	assert.InDelta(t, 13*150.0, result[0].RiskAssessment.RevenueUpside, 1e-9)
	assert.Equal(t, 300.0, result[0].RiskAssessment.WalkCost)

	// Sem tarifa base, usa o ADR atual
	assert.Equal(t, 2, result[1].RecommendedOverbooking)
	assert.InDelta(t, 2*180.0, result[1].RiskAssessment.RevenueUpside, 1e-9)
}

func TestService_CalculateBookingPace_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().
		FetchBookingsToDate(gomock.Any(), "hotel-centro", scenarioDate, scenarioDate.AddDate(0, 0, -1)).
		Return(0, errors.New("boom"))

	service := newTestService(source, nil, nil)

	_, err := service.CalculateBookingPace(context.Background(), "hotel-centro", scenarioDate)
	assert.True(t, IsUpstreamError(err))
}

func TestActionsForCadence(t *testing.T) {
	strategies := DefaultStrategies(scenarioDate)
	daily := domain.Action{Type: domain.ActionSetMinimumStay, Execution: domain.CadenceDaily}
	hourly := domain.Action{Type: domain.ActionCloseRoomType, Execution: domain.CadenceHourly}
	strategies = append(strategies, domain.Strategy{ID: "mix", Actions: []domain.Action{daily, hourly}})

	hourlyActions := ActionsForCadence(strategies, domain.CadenceHourly)
	assert.Equal(t, []domain.Action{strategies[0].Actions[0], hourly}, hourlyActions)

	dailyActions := ActionsForCadence(strategies, domain.CadenceDaily)
	assert.Equal(t, []domain.Action{strategies[0].Actions[0], strategies[1].Actions[0], daily}, dailyActions)
}

func TestService_ExecuteActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actions := []domain.Action{
		{Type: domain.ActionAdjustRate, Execution: domain.CadenceDaily},
		{Type: domain.ActionSetMinimumStay, Execution: domain.CadenceDaily},
		{Type: domain.ActionCloseRoomType, Execution: domain.CadenceDaily},
	}

	executor := mocks.NewMockActionExecutor(ctrl)
	gomock.InOrder(
		executor.EXPECT().ExecuteAction(gomock.Any(), "hotel-centro", actions[0]).Return(nil),
		executor.EXPECT().ExecuteAction(gomock.Any(), "hotel-centro", actions[1]).Return(errors.New("rejected")),
		executor.EXPECT().ExecuteAction(gomock.Any(), "hotel-centro", actions[2]).Return(nil),
	)

	service := newTestService(NewSyntheticSource(), executor, nil)

	applied, err := service.ExecuteActions(context.Background(), "hotel-centro", actions)
	assert.Equal(t, 2, applied)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set_minimum_stay")
	assert.ErrorIs(t, err, ErrActionExecutor)
}

func TestService_RecordRunAndHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runs := repomocks.NewMockOptimizationRunRepository(ctrl)
	source := &countingSource{
		SyntheticSource: NewSyntheticSource(),
		metrics:         domain.MetricsSnapshot{OccupancyRate: 0.9, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 90},
	}
	service := newTestService(source, nil, runs)

	result, err := service.Optimize(context.Background(), "hotel-centro", scenarioDate)
	require.NoError(t, err)

	runs.EXPECT().
		SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *domain.OptimizationRun) error {
			assert.Equal(t, "hotel-centro", run.PropertyID)
			assert.Equal(t, []string{HighOccupancyStrategyID}, run.StrategyIDs)
			assert.Equal(t, domain.TriggerHourly, run.Trigger)
			assert.Equal(t, 1, run.ActionsApplied)
			return nil
		})
	require.NoError(t, service.RecordRun(context.Background(), result, domain.TriggerHourly, 1))

	runs.EXPECT().
		ListRuns(gomock.Any(), "hotel-centro", 10).
		Return([]*domain.OptimizationRun{{ID: 1, PropertyID: "hotel-centro"}}, nil)
	history, err := service.History(context.Background(), "hotel-centro", 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestService_StrategyCRUD(t *testing.T) {
	ctx := context.Background()
	service := newTestService(NewSyntheticSource(), nil, nil)

	created, err := service.CreateStrategy(ctx, sampleStrategy())
	require.NoError(t, err)

	strategies := service.GetStrategies(ctx)
	require.Len(t, strategies, 3)
	assert.Equal(t, HighOccupancyStrategyID, strategies[0].ID)
	assert.Contains(t, strategies, *created)

	name := "Carnaval"
	updated, err := service.UpdateStrategy(ctx, created.ID, domain.StrategyPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Carnaval", updated.Name)

	require.NoError(t, service.DeleteStrategy(ctx, created.ID))
	assert.Len(t, service.GetStrategies(ctx), 2)

	_, err = service.UpdateStrategy(ctx, created.ID, domain.StrategyPatch{Name: &name})
	assert.True(t, IsNotFoundError(err))
}
