package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/yield-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/yield-manager-api/internal/domain"
)

const (
	optimizationRunsTable = "optimization_runs"
	defaultRunsLimit      = 50
)

// OptimizationRunRepository guarda o histórico das otimizações, apenas com inserções
type OptimizationRunRepository interface {
	SaveRun(ctx context.Context, run *domain.OptimizationRun) error
	ListRuns(ctx context.Context, propertyID string, limit int) ([]*domain.OptimizationRun, error)
}

type optimizationRunRepository struct {
	conn *postgres.Connection
}

func NewOptimizationRunRepository(conn *postgres.Connection) OptimizationRunRepository {
	return &optimizationRunRepository{
		conn: conn,
	}
}

func (r *optimizationRunRepository) SaveRun(ctx context.Context, run *domain.OptimizationRun) error {
	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return errors.Wrap(err, "falha ao montar inserção de execução")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro de banco ao salvar execução (code: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "falha ao salvar execução")
	}

	return nil
}

func buildInsertRunQuery(run *domain.OptimizationRun) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(optimizationRunsTable).
		Columns(
			"property_id", "target_date", "current_revenue", "optimized_revenue",
			"uplift_percent", "strategy_ids", "actions_applied", "synthetic", "trigger",
		).
		Values(
			run.PropertyID,
			run.TargetDate,
			run.CurrentRevenue,
			run.OptimizedRevenue,
			run.UpliftPercent,
			pq.Array(run.StrategyIDs),
			run.ActionsApplied,
			run.Synthetic,
			run.Trigger,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *optimizationRunRepository) ListRuns(ctx context.Context, propertyID string, limit int) ([]*domain.OptimizationRun, error) {
	query, args, err := buildListRunsQuery(propertyID, limit).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar consulta de execuções")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao listar execuções da propriedade %s", propertyID)
	}
	defer rows.Close()

	runs := make([]*domain.OptimizationRun, 0)
	for rows.Next() {
		run := &domain.OptimizationRun{}
		if err := rows.Scan(
			&run.ID,
			&run.PropertyID,
			&run.TargetDate,
			&run.CurrentRevenue,
			&run.OptimizedRevenue,
			&run.UpliftPercent,
			pq.Array(&run.StrategyIDs),
			&run.ActionsApplied,
			&run.Synthetic,
			&run.Trigger,
			&run.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "falha ao ler execução")
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de execuções")
	}

	return runs, nil
}

func buildListRunsQuery(propertyID string, limit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = defaultRunsLimit
	}

	return squirrel.
		Select(
			"id", "property_id", "target_date", "current_revenue", "optimized_revenue",
			"uplift_percent", "strategy_ids", "actions_applied", "synthetic", "trigger", "created_at",
		).
		From(optimizationRunsTable).
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}
