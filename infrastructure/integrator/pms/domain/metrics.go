package pmsdomain

import "github.com/shopspring/decimal"

// Metrics é o snapshot diário devolvido pelo PMS. Valores monetários chegam como string decimal.
type Metrics struct {
	PropertyID       string          `json:"property_id"`
	Date             string          `json:"date"`
	OccupancyRate    decimal.Decimal `json:"occupancy_rate"`
	AverageDailyRate decimal.Decimal `json:"average_daily_rate"`
	AvailableRooms   int             `json:"available_rooms"`
	SoldRooms        int             `json:"sold_rooms"`
	NoShows          int             `json:"no_shows"`
	Cancellations    int             `json:"cancellations"`
	WalkIns          int             `json:"walk_ins"`
	Upgrades         int             `json:"upgrades"`
	Downgrades       int             `json:"downgrades"`
}

type BookingsToDate struct {
	TargetDate string `json:"target_date"`
	AsOf       string `json:"as_of"`
	Count      int    `json:"count"`
}

type HistoricalPace struct {
	TargetDate string          `json:"target_date"`
	DaysOut    int             `json:"days_out"`
	Average    decimal.Decimal `json:"average"`
}

// HistoricalRate é a média histórica de no-shows ou cancelamentos de um tipo de quarto
type HistoricalRate struct {
	RoomTypeID string          `json:"room_type_id"`
	Date       string          `json:"date"`
	Value      decimal.Decimal `json:"value"`
}
