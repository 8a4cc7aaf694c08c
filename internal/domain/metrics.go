// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"time"
)

const (
	MinSimulatedOccupancy = 0.1
	MaxSimulatedOccupancy = 1.0
)

// MetricsSnapshot representa a ocupação, tarifa e receita de uma propriedade em uma data
type MetricsSnapshot struct {
	PropertyID       string    `json:"property_id"`
	Date             time.Time `json:"date"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	AverageDailyRate float64   `json:"average_daily_rate"`
	RevPAR           float64   `json:"revpar"`
	TotalRevenue     float64   `json:"total_revenue"`
	AvailableRooms   int       `json:"available_rooms"`
	SoldRooms        int       `json:"sold_rooms"`
	NoShows          int       `json:"no_shows"`
	Cancellations    int       `json:"cancellations"`
	WalkIns          int       `json:"walk_ins"`
	Upgrades         int       `json:"upgrades"`
	Downgrades       int       `json:"downgrades"`
	// Synthetic indica que o snapshot foi gerado pelo provedor de fallback e não por dados reais
	Synthetic bool `json:"synthetic"`
}

// Recalculate devolve uma cópia com RevPAR e receita total derivados dos campos de entrada
func (m MetricsSnapshot) Recalculate() MetricsSnapshot {
	m.RevPAR = m.OccupancyRate * m.AverageDailyRate
	m.TotalRevenue = float64(m.SoldRooms) * m.AverageDailyRate
	return m
}

// WithOccupancy aplica uma nova ocupação (limitada à faixa simulável) e recalcula os quartos vendidos
func (m MetricsSnapshot) WithOccupancy(occupancy float64) MetricsSnapshot {
	m.OccupancyRate = ClampOccupancy(occupancy)
	m.SoldRooms = int(math.Floor(float64(m.AvailableRooms) * m.OccupancyRate))
	return m.Recalculate()
}

// UnsoldRooms retorna a quantidade de quartos disponíveis ainda não vendidos
func (m MetricsSnapshot) UnsoldRooms() int {
	if m.SoldRooms >= m.AvailableRooms {
		return 0
	}
	return m.AvailableRooms - m.SoldRooms
}

// Valid verifica os invariantes básicos do snapshot
func (m MetricsSnapshot) Valid() bool {
	return m.OccupancyRate >= 0 && m.OccupancyRate <= 1 &&
		m.SoldRooms >= 0 && m.SoldRooms <= m.AvailableRooms
}

func ClampOccupancy(occupancy float64) float64 {
	return math.Max(MinSimulatedOccupancy, math.Min(MaxSimulatedOccupancy, occupancy))
}
