package yielding

import "github.com/vfg2006/yield-manager-api/internal/domain"

// RiskModel estima os riscos de aplicar as estratégias simuladas
type RiskModel func(current, optimized domain.MetricsSnapshot, strategies []domain.Strategy) domain.RiskAssessment

// DefaultRiskModel devolve valores fixos, independentes da simulação
func DefaultRiskModel(_, _ domain.MetricsSnapshot, _ []domain.Strategy) domain.RiskAssessment {
	return domain.RiskAssessment{
		DemandDestruction: 0.1,
		CompetitiveLoss:   0.05,
		BrandImpact:       0.02,
	}
}
