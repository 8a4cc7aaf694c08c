package pmsdomain

import "github.com/shopspring/decimal"

type RoomType struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Inventory int             `json:"inventory"`
	BaseRate  decimal.Decimal `json:"base_rate"`
}

type RoomTypesResponse struct {
	Data []RoomType `json:"data"`
}
