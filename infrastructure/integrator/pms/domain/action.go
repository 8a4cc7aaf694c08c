package pmsdomain

import "github.com/shopspring/decimal"

type ActionParameters struct {
	Adjustment       decimal.Decimal `json:"adjustment"`
	AdjustmentType   string          `json:"adjustment_type,omitempty"`
	MaxAdjustment    decimal.Decimal `json:"max_adjustment"`
	MinimumStay      int             `json:"minimum_stay,omitempty"`
	UpgradeIncentive decimal.Decimal `json:"upgrade_incentive"`
	RoomTypeID       string          `json:"room_type_id,omitempty"`
}

// ActionRequest é o corpo enviado ao PMS para aplicar uma ação de yield
type ActionRequest struct {
	Type       string           `json:"type"`
	Parameters ActionParameters `json:"parameters"`
	Execution  string           `json:"execution"`
}

type ActionResponse struct {
	ID       string `json:"id"`
	Accepted bool   `json:"accepted"`
}
