package cli

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestSimulateCommand(t *testing.T) {
	// 2024-03-15 é sexta-feira: as duas estratégias padrão se aplicam
	out, err := execute(t, "simulate",
		"--property", "hotel-1",
		"--date", "2024-03-15",
		"--occupancy", "0.9",
		"--adr", "200",
		"--rooms", "100",
	)
	require.NoError(t, err)

	var output SimulationOutput
	require.NoError(t, testJSON.Unmarshal([]byte(out), &output))

	require.NotNil(t, output.Optimization)
	assert.Equal(t, "hotel-1", output.Optimization.PropertyID)
	assert.InDelta(t, 18000, output.Optimization.CurrentRevenue, 0.001)
	require.Len(t, output.Optimization.Strategies, 2)
	assert.Equal(t, yielding.HighOccupancyStrategyID, output.Optimization.Strategies[0].ID)

	require.NotNil(t, output.Dashboard)
	assert.False(t, output.Dashboard.Degraded)
	assert.Len(t, output.Dashboard.BookingPace, len(yielding.PaceHorizons))
	assert.NotEmpty(t, output.Dashboard.Overbooking)
}

func TestSimulateCommand_WeekdayLowOccupancy(t *testing.T) {
	// 2024-03-13 é quarta-feira e a ocupação está abaixo do gatilho: nenhuma estratégia se aplica
	out, err := execute(t, "simulate", "--date", "2024-03-13", "--occupancy", "0.5", "--adr", "100", "--rooms", "50")
	require.NoError(t, err)

	var output SimulationOutput
	require.NoError(t, testJSON.Unmarshal([]byte(out), &output))

	assert.Empty(t, output.Optimization.Strategies)
	assert.InDelta(t, output.Optimization.CurrentRevenue, output.Optimization.OptimizedRevenue, 0.001)
	assert.Zero(t, output.Optimization.Uplift)
}

func TestSimulateCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Ocupação acima de 1", args: []string{"simulate", "--occupancy", "1.5"}},
		{name: "Diária zerada", args: []string{"simulate", "--adr", "0"}},
		{name: "Sem quartos", args: []string{"simulate", "--rooms", "0"}},
		{name: "Data inválida", args: []string{"simulate", "--date", "15/03/2024"}},
		{name: "Nível de log inválido", args: []string{"simulate", "--log-level", "barulhento"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestStrategiesCommand(t *testing.T) {
	out, err := execute(t, "strategies", "--from", "2024-01-01")
	require.NoError(t, err)

	var strategies []domain.Strategy
	require.NoError(t, testJSON.Unmarshal([]byte(out), &strategies))
	require.Len(t, strategies, 2)

	ids := []string{strategies[0].ID, strategies[1].ID}
	assert.Contains(t, ids, yielding.HighOccupancyStrategyID)
	assert.Contains(t, ids, yielding.WeekendPremiumStrategyID)
	assert.Equal(t, 2024, strategies[0].ValidFrom.Year())
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "version: dev")
	assert.Contains(t, out, "commit: unknown")
}
