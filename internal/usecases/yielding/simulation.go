package yielding

import (
	"math"

	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const (
	// DefaultElasticity é a elasticidade-preço linear da demanda usada na simulação
	DefaultElasticity = -1.2

	// Fricção de demanda e prêmio de tarifa ao impor estadia mínima
	minimumStayDemandFactor = 0.95
	minimumStayRateFactor   = 1.05
)

// Reducer aplica uma ação a um snapshot e devolve um novo snapshot
type Reducer func(metrics domain.MetricsSnapshot, action domain.Action) domain.MetricsSnapshot

// ApplyAction é o reducer padrão, com elasticidade DefaultElasticity
func ApplyAction(metrics domain.MetricsSnapshot, action domain.Action) domain.MetricsSnapshot {
	return applyAction(metrics, action, DefaultElasticity)
}

// NewReducer cria um reducer com a elasticidade informada
func NewReducer(elasticity float64) Reducer {
	return func(metrics domain.MetricsSnapshot, action domain.Action) domain.MetricsSnapshot {
		return applyAction(metrics, action, elasticity)
	}
}

func applyAction(metrics domain.MetricsSnapshot, action domain.Action, elasticity float64) domain.MetricsSnapshot {
	switch action.Type {
	case domain.ActionAdjustRate:
		return adjustRate(metrics, action.Parameters, elasticity)
	case domain.ActionSetMinimumStay:
		adjusted := metrics.WithOccupancy(metrics.OccupancyRate * minimumStayDemandFactor)
		adjusted.AverageDailyRate = metrics.AverageDailyRate * minimumStayRateFactor
		return adjusted.Recalculate()
	default:
		// Ações de inventário e upsell não alteram os números simulados
		return metrics
	}
}

// RateDelta calcula a variação de tarifa de uma ação adjust_rate, já limitada por MaxAdjustment (em %)
func RateDelta(currentADR float64, params domain.ActionParameters) float64 {
	var delta float64
	if params.AdjustmentType == domain.AdjustmentFixed {
		delta = params.Adjustment
	} else {
		delta = currentADR * params.Adjustment / 100
	}

	if params.MaxAdjustment > 0 {
		limit := currentADR * params.MaxAdjustment / 100
		if math.Abs(delta) > limit {
			delta = math.Copysign(limit, delta)
		}
	}

	return delta
}

func adjustRate(metrics domain.MetricsSnapshot, params domain.ActionParameters, elasticity float64) domain.MetricsSnapshot {
	originalADR := metrics.AverageDailyRate
	delta := RateDelta(originalADR, params)
	if delta == 0 {
		return metrics
	}

	var demandChangeRatio float64
	if originalADR != 0 {
		demandChangeRatio = elasticity * (delta / originalADR)
	}

	adjusted := metrics
	adjusted.AverageDailyRate = originalADR + delta
	return adjusted.WithOccupancy(metrics.OccupancyRate * (1 + demandChangeRatio))
}

// Simulate dobra as ações das estratégias, em ordem decrescente de prioridade, sobre o snapshot inicial
func Simulate(initial domain.MetricsSnapshot, strategies []domain.Strategy, reduce Reducer) domain.MetricsSnapshot {
	if reduce == nil {
		reduce = ApplyAction
	}

	ordered := make([]domain.Strategy, len(strategies))
	copy(ordered, strategies)
	SortByPriority(ordered)

	result := initial
	for _, strategy := range ordered {
		for _, action := range strategy.Actions {
			result = reduce(result, action)
		}
	}

	return result.Recalculate()
}
