package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/yield-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const strategiesTable = "strategies"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var strategyColumns = []string{
	"id", "name", "conditions", "actions", "priority", "active",
	"valid_from", "valid_to", "created_at", "updated_at",
}

type StrategyRepository interface {
	SaveOrUpdate(ctx context.Context, strategy domain.Strategy) error
	Delete(ctx context.Context, strategyID string, deletedAt time.Time) error
	ListStrategies(ctx context.Context) ([]domain.Strategy, error)
}

type strategyRepository struct {
	conn *postgres.Connection
}

func NewStrategyRepository(conn *postgres.Connection) StrategyRepository {
	return &strategyRepository{
		conn: conn,
	}
}

func (r *strategyRepository) SaveOrUpdate(ctx context.Context, strategy domain.Strategy) error {
	query, args, err := buildUpsertStrategyQuery(strategy)
	if err != nil {
		return errors.Wrap(err, "falha ao montar upsert de estratégia")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "falha ao salvar estratégia %s", strategy.ID)
	}

	return nil
}

func buildUpsertStrategyQuery(strategy domain.Strategy) (string, []any, error) {
	conditions, err := json.Marshal(strategy.Conditions)
	if err != nil {
		return "", nil, err
	}

	actions, err := json.Marshal(strategy.Actions)
	if err != nil {
		return "", nil, err
	}

	return squirrel.StatementBuilder.
		Insert(strategiesTable).
		Columns(strategyColumns...).
		Values(
			strategy.ID,
			strategy.Name,
			string(conditions),
			string(actions),
			strategy.Priority,
			strategy.Active,
			strategy.ValidFrom,
			strategy.ValidTo,
			strategy.CreatedAt,
			strategy.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				conditions = EXCLUDED.conditions,
				actions = EXCLUDED.actions,
				priority = EXCLUDED.priority,
				active = EXCLUDED.active,
				valid_from = EXCLUDED.valid_from,
				valid_to = EXCLUDED.valid_to,
				updated_at = EXCLUDED.updated_at,
				deleted_at = NULL
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Delete marca a estratégia como removida sem apagar o histórico
func (r *strategyRepository) Delete(ctx context.Context, strategyID string, deletedAt time.Time) error {
	query, args, err := squirrel.
		Update(strategiesTable).
		Set("deleted_at", deletedAt).
		Where(squirrel.Eq{"id": strategyID, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "falha ao montar remoção de estratégia")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "falha ao remover estratégia %s", strategyID)
	}

	return nil
}

func (r *strategyRepository) ListStrategies(ctx context.Context) ([]domain.Strategy, error) {
	query, args, err := buildListStrategiesQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar consulta de estratégias")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao listar estratégias")
	}
	defer rows.Close()

	strategies := make([]domain.Strategy, 0)
	for rows.Next() {
		strategy, err := deserializeStrategy(rows)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de estratégias")
	}

	return strategies, nil
}

func buildListStrategiesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(strategyColumns...).
		From(strategiesTable).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("priority DESC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func deserializeStrategy(rows *sql.Rows) (domain.Strategy, error) {
	var (
		strategy   domain.Strategy
		conditions []byte
		actions    []byte
	)

	if err := rows.Scan(
		&strategy.ID,
		&strategy.Name,
		&conditions,
		&actions,
		&strategy.Priority,
		&strategy.Active,
		&strategy.ValidFrom,
		&strategy.ValidTo,
		&strategy.CreatedAt,
		&strategy.UpdatedAt,
	); err != nil {
		return strategy, errors.Wrap(err, "falha ao ler estratégia")
	}

	if err := decodeStrategyRules(&strategy, conditions, actions); err != nil {
		return strategy, errors.Wrapf(err, "regras inválidas na estratégia %s", strategy.ID)
	}

	return strategy, nil
}

func decodeStrategyRules(strategy *domain.Strategy, conditions, actions []byte) error {
	strategy.Conditions = make([]domain.Condition, 0)
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &strategy.Conditions); err != nil {
			return err
		}
	}

	strategy.Actions = make([]domain.Action, 0)
	if len(actions) > 0 {
		if err := json.Unmarshal(actions, &strategy.Actions); err != nil {
			return err
		}
	}

	return nil
}
