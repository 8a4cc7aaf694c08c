package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/yield-manager-api/internal/config"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

type simulateOptions struct {
	propertyID    string
	date          string
	occupancy     float64
	adr           float64
	rooms         int
	noShows       int
	cancellations int
	elasticity    float64
	walkCost      float64
}

// SimulationOutput é o JSON impresso pelo comando simulate
type SimulationOutput struct {
	Optimization *domain.RevenueOptimization `json:"optimization"`
	Dashboard    *domain.YieldDashboard      `json:"dashboard"`
}

// staticSource devolve o snapshot informado por flags; os demais dados vêm do provedor sintético
type staticSource struct {
	*yielding.SyntheticSource
	snapshot domain.MetricsSnapshot
}

func (s staticSource) FetchMetrics(_ context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	metrics := s.snapshot
	metrics.PropertyID = propertyID
	metrics.Date = date
	return metrics.Recalculate(), nil
}

func (o simulateOptions) validate() error {
	if o.propertyID == "" {
		return errors.New("--property é obrigatório")
	}
	if o.occupancy < 0 || o.occupancy > 1 {
		return errors.New("--occupancy deve estar entre 0 e 1")
	}
	if o.adr <= 0 {
		return errors.New("--adr deve ser maior que 0")
	}
	if o.rooms <= 0 {
		return errors.New("--rooms deve ser maior que 0")
	}
	return nil
}

func (o simulateOptions) snapshot() domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		OccupancyRate:    o.occupancy,
		AverageDailyRate: o.adr,
		AvailableRooms:   o.rooms,
		SoldRooms:        int(math.Floor(float64(o.rooms) * o.occupancy)),
		NoShows:          o.noShows,
		Cancellations:    o.cancellations,
	}
}

// runSimulation executa o motor com as estratégias padrão válidas a partir da data simulada
func runSimulation(ctx context.Context, opts simulateOptions) (*SimulationOutput, error) {
	date, err := utils.ParseDate(opts.date, time.Now())
	if err != nil {
		return nil, fmt.Errorf("--date inválido: %w", err)
	}

	registry := yielding.NewRegistry(nil, yielding.NewEvaluator(nil))
	registry.Seed(yielding.DefaultStrategies(date)...)

	source := staticSource{
		SyntheticSource: yielding.NewSyntheticSource(),
		snapshot:        opts.snapshot(),
	}

	service := yielding.NewService(config.Yield{
		Elasticity: opts.elasticity,
		WalkCost:   opts.walkCost,
	}, registry, source, yielding.LogExecutor{}, nil)

	optimization, err := service.Optimize(ctx, opts.propertyID, date)
	if err != nil {
		return nil, err
	}

	dashboard, err := service.AnalyzeYieldOpportunities(ctx, opts.propertyID, date)
	if err != nil {
		return nil, err
	}

	return &SimulationOutput{Optimization: optimization, Dashboard: dashboard}, nil
}

func newSimulateCommand() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Executa o motor de yield sobre um snapshot estático de métricas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			output, err := runSimulation(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out, err := utils.PrettyJson(output)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.propertyID, "property", "demo-hotel", "ID da propriedade")
	flags.StringVar(&opts.date, "date", "", "Data simulada (YYYY-MM-DD, padrão hoje)")
	flags.Float64Var(&opts.occupancy, "occupancy", 0.75, "Taxa de ocupação entre 0 e 1")
	flags.Float64Var(&opts.adr, "adr", 150, "Diária média")
	flags.IntVar(&opts.rooms, "rooms", 100, "Quartos disponíveis")
	flags.IntVar(&opts.noShows, "no-shows", 0, "No-shows do dia")
	flags.IntVar(&opts.cancellations, "cancellations", 0, "Cancelamentos do dia")
	flags.Float64Var(&opts.elasticity, "elasticity", yielding.DefaultElasticity, "Elasticidade preço-demanda")
	flags.Float64Var(&opts.walkCost, "walk-cost", yielding.DefaultWalkCost, "Custo de realocar um hóspede")

	return cmd
}
