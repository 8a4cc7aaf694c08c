package domain

import "time"

type ConditionType string

const (
	ConditionOccupancy      ConditionType = "occupancy"
	ConditionLeadTime       ConditionType = "lead_time"
	ConditionDayOfWeek      ConditionType = "day_of_week"
	ConditionSeason         ConditionType = "season"
	ConditionEvent          ConditionType = "event"
	ConditionCompetitorRate ConditionType = "competitor_rate"
	ConditionBookingPace    ConditionType = "booking_pace"
)

type Operator string

const (
	OperatorGreaterThan      Operator = "gt"
	OperatorGreaterThanEqual Operator = "gte"
	OperatorLessThan         Operator = "lt"
	OperatorLessThanEqual    Operator = "lte"
	OperatorEqual            Operator = "eq"
	OperatorBetween          Operator = "between"
	OperatorIn               Operator = "in"
)

type ActionType string

const (
	ActionAdjustRate         ActionType = "adjust_rate"
	ActionCloseRoomType      ActionType = "close_room_type"
	ActionOpenRoomType       ActionType = "open_room_type"
	ActionSetMinimumStay     ActionType = "set_minimum_stay"
	ActionRemoveRestrictions ActionType = "remove_restrictions"
	ActionUpgradeOffer       ActionType = "upgrade_offer"
)

type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)

// ExecutionCadence define quando o chamador deve reexecutar o motor para a ação
type ExecutionCadence string

const (
	CadenceImmediate ExecutionCadence = "immediate"
	CadenceDaily     ExecutionCadence = "daily"
	CadenceHourly    ExecutionCadence = "hourly"
)

// Condition é uma regra avaliada contra as métricas de uma data.
// Value pode ser escalar ou lista (between/in). Weight é armazenado mas não participa da avaliação.
type Condition struct {
	Type     ConditionType `json:"type" validate:"required"`
	Operator Operator      `json:"operator" validate:"required,oneof=gt gte lt lte eq between in"`
	Value    any           `json:"value"`
	Weight   float64       `json:"weight"`
}

type ActionParameters struct {
	Adjustment       float64        `json:"adjustment,omitempty"`
	AdjustmentType   AdjustmentType `json:"adjustment_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	MaxAdjustment    float64        `json:"max_adjustment,omitempty"`
	MinimumStay      int            `json:"minimum_stay,omitempty"`
	UpgradeIncentive float64        `json:"upgrade_incentive,omitempty"`
	RoomTypeID       string         `json:"room_type_id,omitempty"`
}

type Action struct {
	Type       ActionType       `json:"type" validate:"required,oneof=adjust_rate close_room_type open_room_type set_minimum_stay remove_restrictions upgrade_offer"`
	Parameters ActionParameters `json:"parameters"`
	Execution  ExecutionCadence `json:"execution" validate:"omitempty,oneof=immediate daily hourly"`
}

// Strategy é uma regra condição→ação de precificação
type Strategy struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Conditions []Condition `json:"conditions"`
	Actions    []Action    `json:"actions"`
	Priority   int         `json:"priority"`
	Active     bool        `json:"active"`
	ValidFrom  time.Time   `json:"valid_from"`
	ValidTo    time.Time   `json:"valid_to"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ValidOn indica se a data está dentro da janela de validade, inclusiva nas duas pontas
func (s Strategy) ValidOn(date time.Time) bool {
	return !date.Before(s.ValidFrom) && !date.After(s.ValidTo)
}

// StrategyPatch contém os campos opcionais para atualização parcial de uma estratégia
type StrategyPatch struct {
	Name       *string      `json:"name"`
	Conditions *[]Condition `json:"conditions" validate:"omitempty,dive"`
	Actions    *[]Action    `json:"actions" validate:"omitempty,dive"`
	Priority   *int         `json:"priority"`
	Active     *bool        `json:"active"`
	ValidFrom  *time.Time   `json:"valid_from"`
	ValidTo    *time.Time   `json:"valid_to"`
}

// Apply devolve a estratégia com os campos do patch mesclados
func (p StrategyPatch) Apply(s Strategy) Strategy {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Conditions != nil {
		s.Conditions = *p.Conditions
	}
	if p.Actions != nil {
		s.Actions = *p.Actions
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	if p.ValidFrom != nil {
		s.ValidFrom = *p.ValidFrom
	}
	if p.ValidTo != nil {
		s.ValidTo = *p.ValidTo
	}
	return s
}

// CreateStrategyRequest é o corpo aceito pela API para criação de estratégias
type CreateStrategyRequest struct {
	Name       string      `json:"name" validate:"required"`
	Conditions []Condition `json:"conditions" validate:"dive"`
	Actions    []Action    `json:"actions" validate:"required,min=1,dive"`
	Priority   int         `json:"priority"`
	Active     *bool       `json:"active"`
	ValidFrom  time.Time   `json:"valid_from" validate:"required"`
	ValidTo    time.Time   `json:"valid_to" validate:"required"`
}

func (r CreateStrategyRequest) ToStrategy() Strategy {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return Strategy{
		Name:       r.Name,
		Conditions: r.Conditions,
		Actions:    r.Actions,
		Priority:   r.Priority,
		Active:     active,
		ValidFrom:  r.ValidFrom,
		ValidTo:    r.ValidTo,
	}
}
