package yielding

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/yield-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)

func sequentialIDs() IDGenerator {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("str%03d", n), nil
	}
}

func newTestRegistry() *Registry {
	return NewRegistry(nil, NewEvaluator(log.Discard())).
		WithClock(func() time.Time { return fixedNow }).
		WithIDGenerator(sequentialIDs())
}

func sampleStrategy() domain.Strategy {
	return domain.Strategy{
		Name: "Feriado prolongado",
		Conditions: []domain.Condition{
			{Type: domain.ConditionOccupancy, Operator: domain.OperatorBetween, Value: []any{0.5, 0.8}, Weight: 0.7},
			{Type: domain.ConditionEvent, Operator: domain.OperatorEqual, Value: "carnaval", Weight: 0.3},
		},
		Actions: []domain.Action{
			{
				Type:       domain.ActionSetMinimumStay,
				Parameters: domain.ActionParameters{MinimumStay: 3},
				Execution:  domain.CadenceDaily,
			},
		},
		Priority:  5,
		Active:    true,
		ValidFrom: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegistry_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Estratégia criada preserva todos os campos", func(t *testing.T) {
		registry := newTestRegistry()
		input := sampleStrategy()

		id, err := registry.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "str001", id)

		expected := input
		expected.ID = id
		expected.CreatedAt = fixedNow
		expected.UpdatedAt = fixedNow

		assert.Equal(t, []domain.Strategy{expected}, registry.List())
	})

	t.Run("Janela inválida falha com erro de validação e não é armazenada", func(t *testing.T) {
		registry := newTestRegistry()
		input := sampleStrategy()
		input.ValidFrom, input.ValidTo = input.ValidTo, input.ValidFrom

		id, err := registry.Create(ctx, input)
		assert.Empty(t, id)
		assert.True(t, IsValidationError(err))
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		var yieldErr *YieldError
		require.ErrorAs(t, err, &yieldErr)
		assert.Equal(t, "YLD_002", yieldErr.Code)
		assert.Empty(t, registry.List())
	})

	t.Run("Nome vazio falha com erro de validação", func(t *testing.T) {
		registry := newTestRegistry()
		input := sampleStrategy()
		input.Name = "   "

		_, err := registry.Create(ctx, input)
		assert.True(t, IsValidationError(err))
		assert.ErrorIs(t, err, ErrStrategyNameEmpty)
		assert.Empty(t, registry.List())
	})

	t.Run("Janela de um único instante é válida", func(t *testing.T) {
		registry := newTestRegistry()
		input := sampleStrategy()
		input.ValidTo = input.ValidFrom

		_, err := registry.Create(ctx, input)
		assert.NoError(t, err)
	})

	t.Run("IDs sempre novos, mesmo com ID informado", func(t *testing.T) {
		registry := newTestRegistry()
		input := sampleStrategy()
		input.ID = "informado"

		first, err := registry.Create(ctx, input)
		require.NoError(t, err)
		second, err := registry.Create(ctx, input)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Len(t, registry.List(), 2)
		_, ok := registry.Get("informado")
		assert.False(t, ok)
	})
}

func TestRegistry_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ID inexistente retorna NotFound", func(t *testing.T) {
		registry := newTestRegistry()
		name := "novo"

		_, err := registry.Update(ctx, "nao-existe", domain.StrategyPatch{Name: &name})
		assert.True(t, IsNotFoundError(err))

		var yieldErr *YieldError
		require.ErrorAs(t, err, &yieldErr)
		assert.Equal(t, "nao-existe", yieldErr.StrategyID)
	})

	t.Run("Mescla apenas os campos informados", func(t *testing.T) {
		registry := newTestRegistry()
		id, err := registry.Create(ctx, sampleStrategy())
		require.NoError(t, err)

		priority := 42
		active := false
		updated, err := registry.Update(ctx, id, domain.StrategyPatch{Priority: &priority, Active: &active})
		require.NoError(t, err)

		assert.Equal(t, 42, updated.Priority)
		assert.False(t, updated.Active)
		assert.Equal(t, "Feriado prolongado", updated.Name)
		assert.Len(t, updated.Conditions, 2)

		stored, ok := registry.Get(id)
		require.True(t, ok)
		assert.Equal(t, updated, stored)
	})

	t.Run("Patch que inverte a janela é rejeitado", func(t *testing.T) {
		registry := newTestRegistry()
		id, err := registry.Create(ctx, sampleStrategy())
		require.NoError(t, err)

		validTo := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
		_, err = registry.Update(ctx, id, domain.StrategyPatch{ValidTo: &validTo})
		assert.True(t, IsValidationError(err))

		stored, _ := registry.Get(id)
		assert.Equal(t, sampleStrategy().ValidTo, stored.ValidTo)
	})
}

func TestRegistry_Delete(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()

	id, err := registry.Create(ctx, sampleStrategy())
	require.NoError(t, err)

	assert.NoError(t, registry.Delete(ctx, id))
	assert.Empty(t, registry.List())

	// Remover novamente não é erro
	assert.NoError(t, registry.Delete(ctx, id))
	assert.NoError(t, registry.Delete(ctx, "nunca-existiu"))
}

func TestRegistry_Persistence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(repo *mocks.MockStrategyRepository)
		run   func(t *testing.T, registry *Registry)
	}{
		{
			name: "Create grava no repositório",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s domain.Strategy) error {
						assert.Equal(t, "str001", s.ID)
						return nil
					})
			},
			run: func(t *testing.T, registry *Registry) {
				_, err := registry.Create(ctx, sampleStrategy())
				assert.NoError(t, err)
				assert.Len(t, registry.List(), 1)
			},
		},
		{
			name: "Falha no repositório não armazena em memória",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			run: func(t *testing.T, registry *Registry) {
				_, err := registry.Create(ctx, sampleStrategy())
				assert.ErrorIs(t, err, ErrPersistStrategy)
				assert.Empty(t, registry.List())
			},
		},
		{
			name: "Delete só chama o repositório para IDs existentes",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Delete(gomock.Any(), "str001", fixedNow).Return(nil).Times(1)
			},
			run: func(t *testing.T, registry *Registry) {
				id, err := registry.Create(ctx, sampleStrategy())
				require.NoError(t, err)
				assert.NoError(t, registry.Delete(ctx, id))
				assert.NoError(t, registry.Delete(ctx, id))
			},
		},
		{
			name: "Falha ao remover no repositório mantém a estratégia em memória",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Delete(gomock.Any(), "str001", fixedNow).Return(errors.New("connection refused"))
			},
			run: func(t *testing.T, registry *Registry) {
				id, err := registry.Create(ctx, sampleStrategy())
				require.NoError(t, err)

				err = registry.Delete(ctx, id)
				assert.ErrorIs(t, err, ErrPersistStrategy)

				_, ok := registry.Get(id)
				assert.True(t, ok)
				assert.Len(t, registry.List(), 1)
			},
		},
		{
			name: "Install grava as estratégias padrão antes de expor em memória",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s domain.Strategy) error {
						assert.NotEmpty(t, s.ID)
						assert.False(t, s.CreatedAt.IsZero())
						return nil
					}).
					Times(2)
			},
			run: func(t *testing.T, registry *Registry) {
				require.NoError(t, registry.Install(ctx, DefaultStrategies(fixedNow)...))

				_, ok := registry.Get(HighOccupancyStrategyID)
				assert.True(t, ok)
				_, ok = registry.Get(WeekendPremiumStrategyID)
				assert.True(t, ok)
			},
		},
		{
			name: "Install interrompe na falha do repositório",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			run: func(t *testing.T, registry *Registry) {
				err := registry.Install(ctx, DefaultStrategies(fixedNow)...)
				assert.ErrorIs(t, err, ErrPersistStrategy)
				assert.Empty(t, registry.List())
			},
		},
		{
			name: "Load carrega as estratégias persistidas",
			setup: func(repo *mocks.MockStrategyRepository) {
				repo.EXPECT().
					ListStrategies(gomock.Any()).
					Return(DefaultStrategies(fixedNow), nil)
			},
			run: func(t *testing.T, registry *Registry) {
				n, err := registry.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, 2, n)

				_, ok := registry.Get(HighOccupancyStrategyID)
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockStrategyRepository(ctrl)
			tt.setup(repo)

			registry := NewRegistry(repo, NewEvaluator(log.Discard())).
				WithClock(func() time.Time { return fixedNow }).
				WithIDGenerator(sequentialIDs())
			tt.run(t, registry)
		})
	}
}

func TestDefaultStrategies(t *testing.T) {
	ref := time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC)

	first := DefaultStrategies(ref)
	second := DefaultStrategies(ref)
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, HighOccupancyStrategyID, first[0].ID)
	assert.Equal(t, WeekendPremiumStrategyID, first[1].ID)
	assert.Greater(t, first[0].Priority, first[1].Priority)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), first[0].ValidFrom)
	assert.Equal(t, domain.CadenceImmediate, first[0].Actions[0].Execution)
	assert.Equal(t, 25.0, first[0].Actions[0].Parameters.MaxAdjustment)
	assert.Equal(t, domain.CadenceDaily, first[1].Actions[0].Execution)
	assert.Equal(t, 15.0, first[1].Actions[0].Parameters.Adjustment)
}

func TestRegistry_Applicable(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()
	registry.Seed(DefaultStrategies(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)

	friday := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	metrics := domain.MetricsSnapshot{OccupancyRate: 0.9, AverageDailyRate: 150, AvailableRooms: 100, SoldRooms: 90}

	t.Run("Sexta com ocupação alta aplica as duas estratégias por prioridade", func(t *testing.T) {
		matched, defaults := registry.Applicable(ctx, EvaluationContext{Date: friday, Metrics: metrics, Now: fixedNow})
		require.Len(t, matched, 2)
		assert.Equal(t, HighOccupancyStrategyID, matched[0].ID)
		assert.Equal(t, WeekendPremiumStrategyID, matched[1].ID)
		assert.Empty(t, defaults)
	})

	t.Run("Fora da janela de validade nada se aplica", func(t *testing.T) {
		matched, _ := registry.Applicable(ctx, EvaluationContext{Date: friday.AddDate(2, 0, 0), Metrics: metrics, Now: fixedNow})
		assert.Empty(t, matched)
	})

	t.Run("Condição sem avaliação aparece como aceita por padrão", func(t *testing.T) {
		r := newTestRegistry()
		s := sampleStrategy()
		s.ID = "carnaval"
		r.Seed(s)

		date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
		matched, defaults := r.Applicable(ctx, EvaluationContext{
			Date:    date,
			Metrics: domain.MetricsSnapshot{OccupancyRate: 0.6},
			Now:     fixedNow,
		})
		require.Len(t, matched, 1)
		assert.Equal(t, []domain.DefaultMatch{{StrategyID: "carnaval", ConditionTypes: []domain.ConditionType{domain.ConditionEvent}}}, defaults)
	})
}

// Para quaisquer estratégias, datas e métricas geradas, Applicable nunca retorna estratégia
// inativa ou fora da janela, e retorna todas as que satisfazem o filtro.
func TestRegistry_Applicable_RandomizedFilter(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(20240108))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for round := 0; round < 50; round++ {
		registry := newTestRegistry()
		thresholds := make(map[string]float64)

		for i := 0; i < 20; i++ {
			from := base.AddDate(0, 0, rng.Intn(60))
			to := from.AddDate(0, 0, rng.Intn(30))
			threshold := rng.Float64()

			s := domain.Strategy{
				ID:   fmt.Sprintf("r%d-s%d", round, i),
				Name: "aleatória",
				Conditions: []domain.Condition{
					{Type: domain.ConditionOccupancy, Operator: domain.OperatorGreaterThanEqual, Value: threshold},
				},
				Priority:  rng.Intn(10),
				Active:    rng.Intn(2) == 0,
				ValidFrom: from,
				ValidTo:   to,
			}
			thresholds[s.ID] = threshold
			registry.Seed(s)
		}

		for sample := 0; sample < 10; sample++ {
			date := base.AddDate(0, 0, rng.Intn(100)).Add(time.Duration(rng.Intn(24)) * time.Hour)
			metrics := domain.MetricsSnapshot{OccupancyRate: rng.Float64()}

			matched, _ := registry.Applicable(ctx, EvaluationContext{Date: date, Metrics: metrics, Now: base})

			returned := make(map[string]bool)
			for i, s := range matched {
				returned[s.ID] = true
				assert.True(t, s.Active, "estratégia inativa retornada: %s", s.ID)
				assert.True(t, s.ValidOn(date), "estratégia fora da janela retornada: %s", s.ID)
				if i > 0 {
					assert.GreaterOrEqual(t, matched[i-1].Priority, s.Priority)
				}
			}

			for _, s := range registry.List() {
				expected := s.Active && s.ValidOn(date) && metrics.OccupancyRate >= thresholds[s.ID]
				assert.Equal(t, expected, returned[s.ID], "filtro incorreto para %s", s.ID)
			}
		}
	}
}
