package yielding

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/log"
)

// DataSource fornece as métricas e históricos consumidos pelo motor
type DataSource interface {
	FetchMetrics(ctx context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error)
	FetchBookingsToDate(ctx context.Context, propertyID string, targetDate, asOf time.Time) (int, error)
	FetchHistoricalPace(ctx context.Context, propertyID string, targetDate time.Time, daysOut int) (float64, error)
	FetchRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error)
	FetchHistoricalNoShows(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error)
	FetchHistoricalCancellations(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error)
}

// ActionExecutor aplica uma ação no sistema de precificação real
type ActionExecutor interface {
	ExecuteAction(ctx context.Context, propertyID string, action domain.Action) error
}

// LogExecutor apenas registra as ações; usado quando não há PMS configurado
type LogExecutor struct {
	Logger log.Logger
}

func (e LogExecutor) ExecuteAction(ctx context.Context, propertyID string, action domain.Action) error {
	logger := e.Logger
	if logger == nil {
		logger = log.ForContext(ctx)
	}
	logger.WithFields(log.Fields{
		"property_id": propertyID,
		"action_type": action.Type,
		"execution":   action.Execution,
	}).Info("Ação registrada sem PMS configurado")
	return nil
}

// SyntheticSource gera dados determinísticos a partir da propriedade e da data
type SyntheticSource struct {
	Rooms int
}

const defaultSyntheticRooms = 100

func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{Rooms: defaultSyntheticRooms}
}

func (s *SyntheticSource) rooms() int {
	if s.Rooms <= 0 {
		return defaultSyntheticRooms
	}
	return s.Rooms
}

func seededRand(parts ...string) *rand.Rand {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func (s *SyntheticSource) FetchMetrics(_ context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	r := seededRand("metrics", propertyID, date.Format(time.DateOnly))
	rooms := s.rooms()

	occupancy := math.Round(between(r, 0.6, 0.95)*100) / 100
	adr := math.Round(between(r, 120, 250))
	sold := int(math.Floor(float64(rooms) * occupancy))

	snapshot := domain.MetricsSnapshot{
		PropertyID:       propertyID,
		Date:             date,
		OccupancyRate:    occupancy,
		AverageDailyRate: adr,
		AvailableRooms:   rooms,
		SoldRooms:        sold,
		NoShows:          r.Intn(5),
		Cancellations:    r.Intn(8),
		WalkIns:          r.Intn(4),
		Upgrades:         r.Intn(10),
		Downgrades:       r.Intn(2),
		Synthetic:        true,
	}

	return snapshot.Recalculate(), nil
}

// expectedBookings aproxima a curva de acúmulo de reservas por distância da data
func (s *SyntheticSource) expectedBookings(daysOut int) float64 {
	return float64(s.rooms()) * 0.85 * math.Exp(-float64(daysOut)/45)
}

func (s *SyntheticSource) FetchBookingsToDate(_ context.Context, propertyID string, targetDate, asOf time.Time) (int, error) {
	daysOut := int(math.Max(0, math.Round(targetDate.Sub(asOf).Hours()/hoursPerDay)))
	r := seededRand("bookings", propertyID, targetDate.Format(time.DateOnly), asOf.Format(time.DateOnly))
	return int(math.Round(s.expectedBookings(daysOut) * between(r, 0.75, 1.25))), nil
}

func (s *SyntheticSource) FetchHistoricalPace(_ context.Context, _ string, _ time.Time, daysOut int) (float64, error) {
	return math.Round(s.expectedBookings(daysOut)*100) / 100, nil
}

func (s *SyntheticSource) FetchRoomTypes(_ context.Context, _ string) ([]domain.RoomType, error) {
	rooms := s.rooms()
	return []domain.RoomType{
		{ID: "standard", Name: "Standard", Inventory: rooms * 6 / 10, BaseRate: 150},
		{ID: "deluxe", Name: "Deluxe", Inventory: rooms * 3 / 10, BaseRate: 220},
		{ID: "suite", Name: "Suite", Inventory: rooms - rooms*6/10 - rooms*3/10, BaseRate: 380},
	}, nil
}

func (s *SyntheticSource) FetchHistoricalNoShows(_ context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	r := seededRand("no_shows", propertyID, roomTypeID, date.Format(time.DateOnly))
	return math.Round(between(r, 1, 6)*10) / 10, nil
}

func (s *SyntheticSource) FetchHistoricalCancellations(_ context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	r := seededRand("cancellations", propertyID, roomTypeID, date.Format(time.DateOnly))
	return math.Round(between(r, 2, 9)*10) / 10, nil
}

// FallbackSource consulta o provedor principal e, se a política permitir,
// substitui falhas por dados sintéticos marcados como tal
type FallbackSource struct {
	primary   DataSource
	synthetic *SyntheticSource
	enabled   bool
	timeout   time.Duration
	logger    log.Logger
}

// NewFallbackSource cria a fonte com fallback. primary nil significa operar só com dados sintéticos.
func NewFallbackSource(primary DataSource, synthetic *SyntheticSource, enabled bool, timeout time.Duration) *FallbackSource {
	if synthetic == nil {
		synthetic = NewSyntheticSource()
	}
	return &FallbackSource{
		primary:   primary,
		synthetic: synthetic,
		enabled:   enabled,
		timeout:   timeout,
		logger:    log.L,
	}
}

// WithLogger substitui o logger
func (f *FallbackSource) WithLogger(logger log.Logger) *FallbackSource {
	f.logger = logger
	return f
}

func (f *FallbackSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}

// fetch executa a consulta principal e aplica a política de fallback
type fallbackReportKey struct{}

// FallbackReport acumula as fontes que responderam com dados sintéticos durante uma operação
type FallbackReport struct {
	mu      sync.Mutex
	sources []string
}

// WithFallbackReport anexa ao contexto um relatório que o FallbackSource preenche a cada fallback
func WithFallbackReport(ctx context.Context) (context.Context, *FallbackReport) {
	report := &FallbackReport{}
	return context.WithValue(ctx, fallbackReportKey{}, report), report
}

func (r *FallbackReport) add(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.sources, source) {
		r.sources = append(r.sources, source)
	}
}

// Sources devolve as fontes sintéticas em ordem alfabética
func (r *FallbackReport) Sources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sources := slices.Clone(r.sources)
	slices.Sort(sources)
	return sources
}

func reportFallback(ctx context.Context, source string) {
	if report, ok := ctx.Value(fallbackReportKey{}).(*FallbackReport); ok {
		report.add(source)
	}
}

func fetch[T any](ctx context.Context, f *FallbackSource, what, propertyID string, primary, synthetic func(context.Context) (T, error)) (T, error) {
	if f.primary == nil {
		reportFallback(ctx, what)
		return synthetic(ctx)
	}

	callCtx, cancel := f.withTimeout(ctx)
	defer cancel()

	value, err := primary(callCtx)
	if err == nil {
		return value, nil
	}

	if !f.enabled {
		var zero T
		return zero, newUpstreamError(err, what)
	}

	f.logger.WithContext(ctx).WithError(err).WithFields(log.Fields{
		"property_id": propertyID,
		"source":      what,
	}).Warn("Falha no provedor de dados, usando dados sintéticos")

	reportFallback(ctx, what)
	return synthetic(ctx)
}

func (f *FallbackSource) FetchMetrics(ctx context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	return fetch(ctx, f, "metrics", propertyID,
		func(c context.Context) (domain.MetricsSnapshot, error) {
			return f.primary.FetchMetrics(c, propertyID, date)
		},
		func(c context.Context) (domain.MetricsSnapshot, error) {
			return f.synthetic.FetchMetrics(c, propertyID, date)
		},
	)
}

func (f *FallbackSource) FetchBookingsToDate(ctx context.Context, propertyID string, targetDate, asOf time.Time) (int, error) {
	return fetch(ctx, f, "bookings_to_date", propertyID,
		func(c context.Context) (int, error) {
			return f.primary.FetchBookingsToDate(c, propertyID, targetDate, asOf)
		},
		func(c context.Context) (int, error) {
			return f.synthetic.FetchBookingsToDate(c, propertyID, targetDate, asOf)
		},
	)
}

func (f *FallbackSource) FetchHistoricalPace(ctx context.Context, propertyID string, targetDate time.Time, daysOut int) (float64, error) {
	return fetch(ctx, f, "historical_pace", propertyID,
		func(c context.Context) (float64, error) {
			return f.primary.FetchHistoricalPace(c, propertyID, targetDate, daysOut)
		},
		func(c context.Context) (float64, error) {
			return f.synthetic.FetchHistoricalPace(c, propertyID, targetDate, daysOut)
		},
	)
}

func (f *FallbackSource) FetchRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error) {
	return fetch(ctx, f, "room_types", propertyID,
		func(c context.Context) ([]domain.RoomType, error) {
			return f.primary.FetchRoomTypes(c, propertyID)
		},
		func(c context.Context) ([]domain.RoomType, error) {
			return f.synthetic.FetchRoomTypes(c, propertyID)
		},
	)
}

func (f *FallbackSource) FetchHistoricalNoShows(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	return fetch(ctx, f, "historical_no_shows", propertyID,
		func(c context.Context) (float64, error) {
			return f.primary.FetchHistoricalNoShows(c, propertyID, roomTypeID, date)
		},
		func(c context.Context) (float64, error) {
			return f.synthetic.FetchHistoricalNoShows(c, propertyID, roomTypeID, date)
		},
	)
}

func (f *FallbackSource) FetchHistoricalCancellations(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	return fetch(ctx, f, "historical_cancellations", propertyID,
		func(c context.Context) (float64, error) {
			return f.primary.FetchHistoricalCancellations(c, propertyID, roomTypeID, date)
		},
		func(c context.Context) (float64, error) {
			return f.synthetic.FetchHistoricalCancellations(c, propertyID, roomTypeID, date)
		},
	)
}
