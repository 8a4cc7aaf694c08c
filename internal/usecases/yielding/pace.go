package yielding

import (
	"time"

	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const paceTrendThreshold = 5.0

// PaceHorizons são as distâncias em dias usadas na comparação do ritmo de reservas
var PaceHorizons = []int{1, 7, 14, 30, 60, 90}

// NewBookingPace calcula variação percentual e tendência de um horizonte
func NewBookingPace(targetDate time.Time, daysOut int, bookingsToDate int, historicalAverage float64) domain.BookingPace {
	var variance float64
	if historicalAverage > 0 {
		variance = (float64(bookingsToDate) - historicalAverage) / historicalAverage * 100
	}

	return domain.BookingPace{
		TargetDate:        targetDate,
		DaysOut:           daysOut,
		BookingsToDate:    bookingsToDate,
		HistoricalAverage: historicalAverage,
		PaceVariance:      variance,
		Trend:             classifyPace(variance),
	}
}

func classifyPace(variance float64) domain.PaceTrend {
	switch {
	case variance > paceTrendThreshold:
		return domain.PaceAhead
	case variance < -paceTrendThreshold:
		return domain.PaceBehind
	default:
		return domain.PaceOnPace
	}
}
