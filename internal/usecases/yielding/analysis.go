package yielding

import (
	"fmt"
	"time"

	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const (
	highOccupancyThreshold     = 0.9
	lowOccupancyThreshold      = 0.6
	highDemandThreshold        = 0.8
	inventoryShortageThreshold = 0.95
	rateIncreaseADRCeiling     = 200

	nearTermPaceDays     = 14
	criticalPaceDays     = 7
	strongPaceVariance   = 15
	criticalPaceVariance = -20

	upgradeRatioTarget = 0.1

	rateIncreaseValuePerRoom = 25
	stimulationValuePerRoom  = 30
	upgradeValuePerRoom      = 25
	inventoryValuePerRoom    = 15
)

// IdentifyOpportunities aplica as regras de oportunidade de forma independente; zero ou várias podem resultar
func IdentifyOpportunities(metrics domain.MetricsSnapshot, pace []domain.BookingPace) []domain.YieldOpportunity {
	opportunities := make([]domain.YieldOpportunity, 0)

	if metrics.OccupancyRate > highOccupancyThreshold && metrics.AverageDailyRate < rateIncreaseADRCeiling {
		opportunities = append(opportunities, domain.YieldOpportunity{
			Type:             domain.OpportunityRateIncrease,
			Description:      "Ocupação alta com tarifa abaixo do mercado",
			Impact:           domain.ImpactHigh,
			RevenuePotential: float64(metrics.SoldRooms) * rateIncreaseValuePerRoom,
			RiskLevel:        domain.ImpactLow,
			ActionRequired:   "Aumentar a tarifa em 10-15%",
			Confidence:       0.85,
		})
	}

	if metrics.OccupancyRate < lowOccupancyThreshold && hasPace(pace, func(p domain.BookingPace) bool {
		return p.Trend == domain.PaceBehind && p.DaysOut <= nearTermPaceDays
	}) {
		opportunities = append(opportunities, domain.YieldOpportunity{
			Type:             domain.OpportunityRateIncrease,
			Description:      "Estimular demanda com ajuste tático de tarifa",
			Impact:           domain.ImpactMedium,
			RevenuePotential: float64(metrics.UnsoldRooms()) * stimulationValuePerRoom,
			RiskLevel:        domain.ImpactMedium,
			ActionRequired:   "Criar promoções de curto prazo ou reduzir a tarifa",
			Confidence:       0.7,
		})
	}

	if float64(metrics.Upgrades) < float64(metrics.SoldRooms)*upgradeRatioTarget {
		opportunities = append(opportunities, domain.YieldOpportunity{
			Type:             domain.OpportunityUpgradeRevenue,
			Description:      "Baixa taxa de upgrades",
			Impact:           domain.ImpactMedium,
			RevenuePotential: float64(metrics.SoldRooms) * upgradeValuePerRoom,
			RiskLevel:        domain.ImpactLow,
			ActionRequired:   "Oferecer incentivos de upgrade no check-in",
			Confidence:       0.75,
		})
	}

	if metrics.OccupancyRate > highDemandThreshold && hasPace(pace, func(p domain.BookingPace) bool {
		return p.Trend == domain.PaceAhead && p.PaceVariance > strongPaceVariance
	}) {
		opportunities = append(opportunities, domain.YieldOpportunity{
			Type:             domain.OpportunityInventoryControl,
			Description:      "Ritmo de reservas acima do histórico",
			Impact:           domain.ImpactHigh,
			RevenuePotential: float64(metrics.SoldRooms) * inventoryValuePerRoom,
			RiskLevel:        domain.ImpactMedium,
			ActionRequired:   "Restringir inventário de tarifas com desconto e aplicar estadia mínima",
			Confidence:       0.8,
		})
	}

	return opportunities
}

// GenerateAlerts gera os alertas operacionais para o painel
func GenerateAlerts(metrics domain.MetricsSnapshot, pace []domain.BookingPace, opportunities []domain.YieldOpportunity, now time.Time) []domain.YieldAlert {
	alerts := make([]domain.YieldAlert, 0)

	if hasPace(pace, func(p domain.BookingPace) bool {
		return p.Trend == domain.PaceBehind && p.PaceVariance < criticalPaceVariance && p.DaysOut <= criticalPaceDays
	}) {
		alerts = append(alerts, domain.YieldAlert{
			Type:     domain.AlertPaceBehind,
			Severity: domain.SeverityCritical,
			Message:  "Reservas muito abaixo do ritmo histórico para os próximos dias",
			SuggestedActions: []string{
				"Revisar tarifas frente à concorrência",
				"Ativar campanhas de última hora",
				"Flexibilizar restrições de estadia",
			},
			CreatedAt: now,
		})
	}

	if metrics.OccupancyRate >= inventoryShortageThreshold {
		alerts = append(alerts, domain.YieldAlert{
			Type:     domain.AlertInventoryShortage,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Ocupação em %.0f%%, inventário quase esgotado", metrics.OccupancyRate*100),
			SuggestedActions: []string{
				"Aumentar tarifas",
				"Avaliar overbooking controlado",
				"Fechar tarifas com desconto",
			},
			CreatedAt: now,
		})
	}

	var actions []string
	for _, opportunity := range opportunities {
		if opportunity.Impact == domain.ImpactHigh {
			actions = append(actions, opportunity.ActionRequired)
		}
	}
	if len(actions) > 0 {
		alerts = append(alerts, domain.YieldAlert{
			Type:             domain.AlertRateOpportunity,
			Severity:         domain.SeverityInfo,
			Message:          fmt.Sprintf("%d oportunidade(s) de alto impacto identificada(s)", len(actions)),
			SuggestedActions: actions,
			CreatedAt:        now,
		})
	}

	return alerts
}

func hasPace(pace []domain.BookingPace, match func(domain.BookingPace) bool) bool {
	for _, p := range pace {
		if match(p) {
			return true
		}
	}
	return false
}
