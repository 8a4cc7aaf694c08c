package yielding

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/yield-manager-api/infrastructure/repository"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

const (
	HighOccupancyStrategyID  = "high-occupancy-rate-increase"
	WeekendPremiumStrategyID = "weekend-premium"
)

// IDGenerator gera identificadores para novas estratégias
type IDGenerator func() (string, error)

// Registry guarda as estratégias em memória. O mutex só protege o mapa;
// escritores concorrentes sobre a mesma estratégia continuam sujeitos a last-write-wins.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]domain.Strategy
	repository repository.StrategyRepository
	evaluator  *Evaluator
	generateID IDGenerator
	now        func() time.Time
}

// NewRegistry cria um registro vazio. repo pode ser nil para operar apenas em memória.
func NewRegistry(repo repository.StrategyRepository, evaluator *Evaluator) *Registry {
	if evaluator == nil {
		evaluator = NewEvaluator(nil)
	}

	return &Registry{
		strategies: make(map[string]domain.Strategy),
		repository: repo,
		evaluator:  evaluator,
		generateID: utils.GenerateID,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado em created_at/updated_at
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// WithIDGenerator substitui o gerador de IDs
func (r *Registry) WithIDGenerator(generate IDGenerator) *Registry {
	r.generateID = generate
	return r
}

// DefaultStrategies retorna as estratégias padrão com janela de validade de um ano a partir de ref
func DefaultStrategies(ref time.Time) []domain.Strategy {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 365)

	return []domain.Strategy{
		{
			ID:   HighOccupancyStrategyID,
			Name: "High Occupancy Rate Increase",
			Conditions: []domain.Condition{
				{Type: domain.ConditionOccupancy, Operator: domain.OperatorGreaterThanEqual, Value: 0.85, Weight: 1},
			},
			Actions: []domain.Action{
				{
					Type: domain.ActionAdjustRate,
					Parameters: domain.ActionParameters{
						Adjustment:     10,
						AdjustmentType: domain.AdjustmentPercentage,
						MaxAdjustment:  25,
					},
					Execution: domain.CadenceImmediate,
				},
			},
			Priority:  10,
			Active:    true,
			ValidFrom: start,
			ValidTo:   end,
			CreatedAt: start,
			UpdatedAt: start,
		},
		{
			ID:   WeekendPremiumStrategyID,
			Name: "Weekend Premium",
			Conditions: []domain.Condition{
				{Type: domain.ConditionDayOfWeek, Operator: domain.OperatorIn, Value: []any{5, 6}, Weight: 1},
			},
			Actions: []domain.Action{
				{
					Type: domain.ActionAdjustRate,
					Parameters: domain.ActionParameters{
						Adjustment:     15,
						AdjustmentType: domain.AdjustmentPercentage,
					},
					Execution: domain.CadenceDaily,
				},
			},
			Priority:  8,
			Active:    true,
			ValidFrom: start,
			ValidTo:   end,
			CreatedAt: start,
			UpdatedAt: start,
		},
	}
}

// Seed insere estratégias com IDs fixos sem passar pela geração de IDs nem pelo repositório
func (r *Registry) Seed(strategies ...domain.Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range strategies {
		r.strategies[s.ID] = s
	}
}

// Install grava as estratégias no repositório e só então em memória, preservando os IDs informados.
// Para no primeiro erro; as estratégias já gravadas permanecem.
func (r *Registry) Install(ctx context.Context, strategies ...domain.Strategy) error {
	now := r.now()

	for _, s := range strategies {
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}

		if err := r.persist(ctx, s); err != nil {
			return err
		}

		r.mu.Lock()
		r.strategies[s.ID] = s
		r.mu.Unlock()
	}

	return nil
}

// Load carrega as estratégias persistidas. Sem repositório, não faz nada.
func (r *Registry) Load(ctx context.Context) (int, error) {
	if r.repository == nil {
		return 0, nil
	}

	strategies, err := r.repository.ListStrategies(ctx)
	if err != nil {
		return 0, err
	}

	r.Seed(strategies...)
	return len(strategies), nil
}

func validateStrategy(s domain.Strategy) error {
	if strings.TrimSpace(s.Name) == "" {
		return newValidationError(ErrStrategyNameEmpty, "nome da estratégia vazio")
	}
	if s.ValidFrom.After(s.ValidTo) {
		return newValidationError(ErrInvalidDateRange, "valid_from maior que valid_to")
	}
	return nil
}

// Create valida, atribui um novo ID e armazena a estratégia
func (r *Registry) Create(ctx context.Context, strategy domain.Strategy) (string, error) {
	if err := validateStrategy(strategy); err != nil {
		return "", err
	}

	id, err := r.generateID()
	if err != nil {
		return "", NewYieldError(err, apiErrors.ErrInternalServer, "falha ao gerar ID da estratégia")
	}

	now := r.now()
	strategy.ID = id
	strategy.CreatedAt = now
	strategy.UpdatedAt = now

	if err := r.persist(ctx, strategy); err != nil {
		return "", err
	}

	r.mu.Lock()
	r.strategies[id] = strategy
	r.mu.Unlock()

	return id, nil
}

// Update mescla o patch na estratégia existente
func (r *Registry) Update(ctx context.Context, id string, patch domain.StrategyPatch) (domain.Strategy, error) {
	r.mu.RLock()
	current, ok := r.strategies[id]
	r.mu.RUnlock()
	if !ok {
		return domain.Strategy{}, newNotFoundError(id)
	}

	updated := patch.Apply(current)
	if err := validateStrategy(updated); err != nil {
		return domain.Strategy{}, err
	}
	updated.UpdatedAt = r.now()

	if err := r.persist(ctx, updated); err != nil {
		return domain.Strategy{}, err
	}

	r.mu.Lock()
	r.strategies[id] = updated
	r.mu.Unlock()

	return updated, nil
}

// Delete remove a estratégia. Remover um ID inexistente não é erro.
// A memória só é alterada depois que o repositório confirma a remoção.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.RLock()
	_, ok := r.strategies[id]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	if r.repository != nil {
		if err := r.repository.Delete(ctx, id, r.now()); err != nil {
			return NewYieldErrorWithID(ErrPersistStrategy, apiErrors.ErrDatabaseOperation, id, err.Error())
		}
	}

	r.mu.Lock()
	delete(r.strategies, id)
	r.mu.Unlock()

	return nil
}

// List retorna todas as estratégias sem ordem definida
func (r *Registry) List() []domain.Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]domain.Strategy, 0, len(r.strategies))
	for _, s := range r.strategies {
		strategies = append(strategies, s)
	}
	return strategies
}

// Get retorna a estratégia pelo ID
func (r *Registry) Get(id string) (domain.Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[id]
	return s, ok
}

// Applicable retorna as estratégias ativas, válidas na data e com todas as condições satisfeitas,
// em ordem decrescente de prioridade
func (r *Registry) Applicable(ctx context.Context, evalCtx EvaluationContext) ([]domain.Strategy, []domain.DefaultMatch) {
	logger := log.ForContext(ctx)

	var (
		matched  []domain.Strategy
		defaults []domain.DefaultMatch
	)

	for _, s := range r.List() {
		if !s.Active || !s.ValidOn(evalCtx.Date) {
			continue
		}

		result := r.evaluator.EvaluateAll(s.Conditions, evalCtx)
		logger.WithFields(log.Fields{
			"strategy_id": s.ID,
			"matched":     result.Matched,
		}).Debug("Estratégia avaliada")

		if !result.Matched {
			continue
		}

		matched = append(matched, s)
		if len(result.DefaultTypes) > 0 {
			defaults = append(defaults, domain.DefaultMatch{
				StrategyID:     s.ID,
				ConditionTypes: result.DefaultTypes,
			})
		}
	}

	SortByPriority(matched)
	return matched, defaults
}

// SortByPriority ordena por prioridade decrescente, desempatando pelo ID
func SortByPriority(strategies []domain.Strategy) {
	sort.SliceStable(strategies, func(i, j int) bool {
		if strategies[i].Priority != strategies[j].Priority {
			return strategies[i].Priority > strategies[j].Priority
		}
		return strategies[i].ID < strategies[j].ID
	})
}

func (r *Registry) persist(ctx context.Context, strategy domain.Strategy) error {
	if r.repository == nil {
		return nil
	}

	if err := r.repository.SaveOrUpdate(ctx, strategy); err != nil {
		return NewYieldErrorWithID(ErrPersistStrategy, apiErrors.ErrDatabaseOperation, strategy.ID, err.Error())
	}
	return nil
}
