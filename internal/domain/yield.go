package domain

import "time"

type PaceTrend string

const (
	PaceAhead  PaceTrend = "ahead"
	PaceBehind PaceTrend = "behind"
	PaceOnPace PaceTrend = "on_pace"
)

// BookingPace compara as reservas acumuladas para uma data com a média histórica no mesmo horizonte
type BookingPace struct {
	TargetDate        time.Time `json:"target_date"`
	DaysOut           int       `json:"days_out"`
	BookingsToDate    int       `json:"bookings_to_date"`
	HistoricalAverage float64   `json:"historical_average"`
	PaceVariance      float64   `json:"pace_variance"`
	Trend             PaceTrend `json:"trend"`
}

// RoomType é um tipo de quarto do inventário da propriedade
type RoomType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Inventory int     `json:"inventory"`
	BaseRate  float64 `json:"base_rate"`
}

type OpportunityType string

const (
	OpportunityRateIncrease     OpportunityType = "rate_increase"
	OpportunityUpgradeRevenue   OpportunityType = "upgrade_revenue"
	OpportunityInventoryControl OpportunityType = "inventory_control"
)

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

type YieldOpportunity struct {
	Type             OpportunityType `json:"type"`
	Description      string          `json:"description"`
	Impact           Impact          `json:"impact"`
	RevenuePotential float64         `json:"revenue_potential"`
	RiskLevel        Impact          `json:"risk_level"`
	ActionRequired   string          `json:"action_required"`
	Confidence       float64         `json:"confidence"`
}

type AlertType string

const (
	AlertPaceBehind        AlertType = "pace_behind"
	AlertInventoryShortage AlertType = "inventory_shortage"
	AlertRateOpportunity   AlertType = "rate_opportunity"
)

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

type YieldAlert struct {
	Type             AlertType     `json:"type"`
	Severity         AlertSeverity `json:"severity"`
	Message          string        `json:"message"`
	SuggestedActions []string      `json:"suggested_actions"`
	CreatedAt        time.Time     `json:"created_at"`
}

type OverbookingRisk struct {
	WalkProbability float64 `json:"walk_probability"`
	WalkCost        float64 `json:"walk_cost"`
	RevenueUpside   float64 `json:"revenue_upside"`
	NetBenefit      float64 `json:"net_benefit"`
}

type OverbookingRecommendation struct {
	RoomTypeID             string          `json:"room_type_id"`
	RoomTypeName           string          `json:"room_type_name"`
	CurrentInventory       int             `json:"current_inventory"`
	RecommendedOverbooking int             `json:"recommended_overbooking"`
	ExpectedNoShows        float64         `json:"expected_no_shows"`
	ExpectedCancellations  float64         `json:"expected_cancellations"`
	RiskAssessment         OverbookingRisk `json:"risk_assessment"`
}

type RiskAssessment struct {
	DemandDestruction float64 `json:"demand_destruction"`
	CompetitiveLoss   float64 `json:"competitive_loss"`
	BrandImpact       float64 `json:"brand_impact"`
}

type RevenueForecast struct {
	Occupancy float64 `json:"occupancy"`
	ADR       float64 `json:"adr"`
	RevPAR    float64 `json:"revpar"`
}

// RevenueOptimization é o resultado da simulação das estratégias aplicáveis
type RevenueOptimization struct {
	PropertyID       string          `json:"property_id"`
	Date             time.Time       `json:"date"`
	CurrentRevenue   float64         `json:"current_revenue"`
	OptimizedRevenue float64         `json:"optimized_revenue"`
	Uplift           float64         `json:"uplift"`
	UpliftPercent    float64         `json:"uplift_percent"`
	Strategies       []Strategy      `json:"strategies"`
	DefaultMatches   []DefaultMatch  `json:"default_matches,omitempty"`
	Forecast         RevenueForecast `json:"forecast"`
	Risks            RiskAssessment  `json:"risks"`
	CurrentMetrics   MetricsSnapshot `json:"current_metrics"`
	OptimizedMetrics MetricsSnapshot `json:"optimized_metrics"`
}

// DefaultMatch registra as condições que só passaram porque o tipo ainda não é avaliado
type DefaultMatch struct {
	StrategyID     string          `json:"strategy_id"`
	ConditionTypes []ConditionType `json:"condition_types"`
}

// YieldDashboard agrega a análise de yield de uma propriedade em uma data
type YieldDashboard struct {
	PropertyID    string                      `json:"property_id"`
	Date          time.Time                   `json:"date"`
	Metrics       MetricsSnapshot             `json:"metrics"`
	BookingPace   []BookingPace               `json:"booking_pace"`
	Opportunities []YieldOpportunity          `json:"opportunities"`
	Alerts        []YieldAlert                `json:"alerts"`
	Overbooking   []OverbookingRecommendation `json:"overbooking"`
	Optimization  *RevenueOptimization        `json:"optimization"`
	Degraded      bool                        `json:"degraded"`
	GeneratedAt   time.Time                   `json:"generated_at"`

	// SyntheticSources lista as consultas que caíram no provedor sintético
	SyntheticSources []string `json:"synthetic_sources,omitempty"`
}

type OptimizationTrigger string

const (
	TriggerAPI    OptimizationTrigger = "api"
	TriggerHourly OptimizationTrigger = "hourly"
	TriggerDaily  OptimizationTrigger = "daily"
	TriggerManual OptimizationTrigger = "manual"
)

// OptimizationRun é o histórico persistido de uma execução de otimização
type OptimizationRun struct {
	ID               int                 `json:"id"`
	PropertyID       string              `json:"property_id"`
	TargetDate       time.Time           `json:"target_date"`
	CurrentRevenue   float64             `json:"current_revenue"`
	OptimizedRevenue float64             `json:"optimized_revenue"`
	UpliftPercent    float64             `json:"uplift_percent"`
	StrategyIDs      []string            `json:"strategy_ids"`
	ActionsApplied   int                 `json:"actions_applied"`
	Synthetic        bool                `json:"synthetic"`
	Trigger          OptimizationTrigger `json:"trigger"`
	CreatedAt        time.Time           `json:"created_at"`
}

func NewOptimizationRun(result *RevenueOptimization, trigger OptimizationTrigger) *OptimizationRun {
	ids := make([]string, 0, len(result.Strategies))
	for _, strategy := range result.Strategies {
		ids = append(ids, strategy.ID)
	}

	return &OptimizationRun{
		PropertyID:       result.PropertyID,
		TargetDate:       result.Date,
		CurrentRevenue:   result.CurrentRevenue,
		OptimizedRevenue: result.OptimizedRevenue,
		UpliftPercent:    result.UpliftPercent,
		StrategyIDs:      ids,
		Synthetic:        result.CurrentMetrics.Synthetic,
		Trigger:          trigger,
	}
}
