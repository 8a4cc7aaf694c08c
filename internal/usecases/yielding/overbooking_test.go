package yielding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/yield-manager-api/internal/domain"
)

func TestNewOverbookingRecommendation(t *testing.T) {
	roomType := domain.RoomType{ID: "std", Name: "Standard", Inventory: 60, BaseRate: 150}

	result := NewOverbookingRecommendation(roomType, 5, 10, 150, DefaultWalkCost)

	assert.Equal(t, "std", result.RoomTypeID)
	assert.Equal(t, "Standard", result.RoomTypeName)
	assert.Equal(t, 60, result.CurrentInventory)
	assert.InDelta(t, 4.0, result.ExpectedNoShows, 1e-9)
	assert.InDelta(t, 9.0, result.ExpectedCancellations, 1e-9)
	assert.Equal(t, 13, result.RecommendedOverbooking)
	assert.InDelta(t, 13*150.0, result.RiskAssessment.RevenueUpside, 1e-9)
	assert.Equal(t, DefaultWalkCost, result.RiskAssessment.WalkCost)
}

// O overbooking recomendado é o piso da soma dos mesmos termos subtraídos no cálculo da
// probabilidade de walk, então a probabilidade é sempre 0 e o benefício líquido é o ganho bruto.
func TestNewOverbookingRecommendation_WalkProbabilityIsAlwaysZero(t *testing.T) {
	cases := []struct {
		noShows       float64
		cancellations float64
		inventory     int
	}{
		{noShows: 5, cancellations: 10, inventory: 60},
		{noShows: 3.7, cancellations: 2.2, inventory: 30},
		{noShows: 0.4, cancellations: 0.3, inventory: 10},
		{noShows: 12.9, cancellations: 17.3, inventory: 200},
	}

	for _, c := range cases {
		result := NewOverbookingRecommendation(domain.RoomType{ID: "x", Inventory: c.inventory}, c.noShows, c.cancellations, 200, DefaultWalkCost)

		assert.InDelta(t, 0.0, result.RiskAssessment.WalkProbability, 1e-12)
		assert.GreaterOrEqual(t, result.RiskAssessment.WalkProbability, 0.0)
		assert.InDelta(t, result.RiskAssessment.RevenueUpside, result.RiskAssessment.NetBenefit, 1e-9)
	}
}

func TestNewOverbookingRecommendation_EmptyInventory(t *testing.T) {
	result := NewOverbookingRecommendation(domain.RoomType{ID: "x"}, 2, 2, 100, DefaultWalkCost)

	assert.Equal(t, 0.0, result.RiskAssessment.WalkProbability)
	assert.Equal(t, 3, result.RecommendedOverbooking)
}
