package yielding

import (
	"math"

	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const (
	// DefaultWalkCost é o custo estimado de realocar um hóspede com reserva confirmada
	DefaultWalkCost = 150.0

	noShowFactor       = 0.8
	cancellationFactor = 0.9
)

// NewOverbookingRecommendation calcula a recomendação de overbooking de um tipo de quarto.
//
// A probabilidade de walk usa os mesmos dois termos que definem o overbooking recomendado,
// então o numerador nunca é positivo e o resultado é sempre 0.
func NewOverbookingRecommendation(
	roomType domain.RoomType,
	historicalNoShows float64,
	historicalCancellations float64,
	averageRate float64,
	walkCost float64,
) domain.OverbookingRecommendation {
	expectedNoShows := historicalNoShows * noShowFactor
	expectedCancellations := historicalCancellations * cancellationFactor
	recommended := int(math.Floor(expectedNoShows + expectedCancellations))

	var walkProbability float64
	if roomType.Inventory > 0 {
		walkProbability = math.Max(0, (float64(recommended)-expectedNoShows-expectedCancellations)/float64(roomType.Inventory))
	}

	upside := float64(recommended) * averageRate

	return domain.OverbookingRecommendation{
		RoomTypeID:             roomType.ID,
		RoomTypeName:           roomType.Name,
		CurrentInventory:       roomType.Inventory,
		RecommendedOverbooking: recommended,
		ExpectedNoShows:        expectedNoShows,
		ExpectedCancellations:  expectedCancellations,
		RiskAssessment: domain.OverbookingRisk{
			WalkProbability: walkProbability,
			WalkCost:        walkCost,
			RevenueUpside:   upside,
			NetBenefit:      upside - walkProbability*walkCost*float64(recommended),
		},
	}
}
