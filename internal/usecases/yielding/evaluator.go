package yielding

import (
	"math"
	"time"

	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/log"
)

const hoursPerDay = 24

// EvaluationContext reúne os dados contra os quais as condições são avaliadas
type EvaluationContext struct {
	Date    time.Time
	Metrics domain.MetricsSnapshot
	Now     time.Time
}

// Outcome distingue uma condição realmente satisfeita de uma aceita por padrão
type Outcome int

const (
	OutcomeFalse Outcome = iota
	OutcomeTrue
	// OutcomeUnimplemented indica tipo de condição sem avaliação, aceito sempre
	OutcomeUnimplemented
)

// Passed indica se a condição não bloqueia a estratégia
func (o Outcome) Passed() bool {
	return o != OutcomeFalse
}

// EvaluationResult é o resultado da avaliação conjunta (AND) das condições
type EvaluationResult struct {
	Matched      bool
	DefaultTypes []domain.ConditionType
}

type Evaluator struct {
	logger log.Logger
}

func NewEvaluator(logger log.Logger) *Evaluator {
	if logger == nil {
		logger = log.L
	}
	return &Evaluator{logger: logger}
}

// Evaluate avalia uma única condição
func (e *Evaluator) Evaluate(condition domain.Condition, ctx EvaluationContext) Outcome {
	var actual float64

	switch condition.Type {
	case domain.ConditionOccupancy:
		actual = ctx.Metrics.OccupancyRate
	case domain.ConditionDayOfWeek:
		actual = float64(ctx.Date.Weekday())
	case domain.ConditionLeadTime:
		actual = LeadTimeDays(ctx.Date, ctx.Now)
	default:
		e.logger.WithFields(log.Fields{
			"condition_type": condition.Type,
			"condition_op":   condition.Operator,
		}).Warn("Tipo de condição sem avaliação, aceito por padrão")
		return OutcomeUnimplemented
	}

	if compare(condition.Operator, actual, condition.Value) {
		return OutcomeTrue
	}
	return OutcomeFalse
}

// EvaluateAll aplica AND sobre as condições; lista vazia é verdadeira
func (e *Evaluator) EvaluateAll(conditions []domain.Condition, ctx EvaluationContext) EvaluationResult {
	result := EvaluationResult{Matched: true}

	for _, condition := range conditions {
		outcome := e.Evaluate(condition, ctx)
		if !outcome.Passed() {
			return EvaluationResult{Matched: false}
		}
		if outcome == OutcomeUnimplemented {
			result.DefaultTypes = append(result.DefaultTypes, condition.Type)
		}
	}

	return result
}

// LeadTimeDays retorna o teto da diferença em dias entre date e now; negativo para datas passadas
func LeadTimeDays(date, now time.Time) float64 {
	return math.Ceil(date.Sub(now).Hours() / hoursPerDay)
}

func compare(operator domain.Operator, actual float64, value any) bool {
	switch operator {
	case domain.OperatorGreaterThan:
		v, ok := toFloat(value)
		return ok && actual > v
	case domain.OperatorGreaterThanEqual:
		v, ok := toFloat(value)
		return ok && actual >= v
	case domain.OperatorLessThan:
		v, ok := toFloat(value)
		return ok && actual < v
	case domain.OperatorLessThanEqual:
		v, ok := toFloat(value)
		return ok && actual <= v
	case domain.OperatorEqual:
		v, ok := toFloat(value)
		return ok && actual == v
	case domain.OperatorBetween:
		bounds, ok := toFloatSlice(value)
		if !ok || len(bounds) != 2 {
			return false
		}
		return actual >= bounds[0] && actual <= bounds[1]
	case domain.OperatorIn:
		values, ok := toFloatSlice(value)
		if !ok {
			return false
		}
		for _, v := range values {
			if actual == v {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	default:
		return 0, false
	}
}

func toFloatSlice(value any) ([]float64, bool) {
	switch v := value.(type) {
	case []float64:
		return v, true
	case []int:
		result := make([]float64, len(v))
		for i, n := range v {
			result[i] = float64(n)
		}
		return result, true
	case []any:
		result := make([]float64, 0, len(v))
		for _, item := range v {
			f, ok := toFloat(item)
			if !ok {
				return nil, false
			}
			result = append(result, f)
		}
		return result, true
	default:
		return nil, false
	}
}
