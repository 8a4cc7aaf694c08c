// Package pms integra o motor de yield ao sistema de gestão da propriedade
package pms

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
	"github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/pmsclient"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/pkg/log"
)

type PMSIntegrator interface {
	FetchMetrics(ctx context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error)
	FetchBookingsToDate(ctx context.Context, propertyID string, targetDate, asOf time.Time) (int, error)
	FetchHistoricalPace(ctx context.Context, propertyID string, targetDate time.Time, daysOut int) (float64, error)
	FetchRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error)
	FetchHistoricalNoShows(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error)
	FetchHistoricalCancellations(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error)
	ExecuteAction(ctx context.Context, propertyID string, action domain.Action) error
}

type PMSService struct {
	Client pmsclient.Client
}

func New(client pmsclient.Client) PMSIntegrator {
	return &PMSService{
		Client: client,
	}
}

func (s *PMSService) FetchMetrics(ctx context.Context, propertyID string, date time.Time) (domain.MetricsSnapshot, error) {
	resp, err := s.Client.GetMetrics(ctx, propertyID, date.Format(time.DateOnly))
	if err != nil {
		return domain.MetricsSnapshot{}, err
	}

	metrics := domain.MetricsSnapshot{
		PropertyID:       propertyID,
		Date:             date,
		OccupancyRate:    resp.OccupancyRate.InexactFloat64(),
		AverageDailyRate: resp.AverageDailyRate.InexactFloat64(),
		AvailableRooms:   resp.AvailableRooms,
		SoldRooms:        resp.SoldRooms,
		NoShows:          resp.NoShows,
		Cancellations:    resp.Cancellations,
		WalkIns:          resp.WalkIns,
		Upgrades:         resp.Upgrades,
		Downgrades:       resp.Downgrades,
	}.Recalculate()

	if !metrics.Valid() {
		return domain.MetricsSnapshot{}, fmt.Errorf("métricas inválidas para %s em %s", propertyID, date.Format(time.DateOnly))
	}

	return metrics, nil
}

func (s *PMSService) FetchBookingsToDate(ctx context.Context, propertyID string, targetDate, asOf time.Time) (int, error) {
	resp, err := s.Client.GetBookingsToDate(ctx, propertyID, targetDate.Format(time.DateOnly), asOf.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (s *PMSService) FetchHistoricalPace(ctx context.Context, propertyID string, targetDate time.Time, daysOut int) (float64, error) {
	resp, err := s.Client.GetHistoricalPace(ctx, propertyID, targetDate.Format(time.DateOnly), daysOut)
	if err != nil {
		return 0, err
	}
	return resp.Average.InexactFloat64(), nil
}

func (s *PMSService) FetchRoomTypes(ctx context.Context, propertyID string) ([]domain.RoomType, error) {
	resp, err := s.Client.GetRoomTypes(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	roomTypes := make([]domain.RoomType, 0, len(resp))
	for _, rt := range resp {
		roomTypes = append(roomTypes, domain.RoomType{
			ID:        rt.ID,
			Name:      rt.Name,
			Inventory: rt.Inventory,
			BaseRate:  rt.BaseRate.InexactFloat64(),
		})
	}

	return roomTypes, nil
}

func (s *PMSService) FetchHistoricalNoShows(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	resp, err := s.Client.GetHistoricalNoShows(ctx, propertyID, roomTypeID, date.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return resp.Value.InexactFloat64(), nil
}

func (s *PMSService) FetchHistoricalCancellations(ctx context.Context, propertyID, roomTypeID string, date time.Time) (float64, error) {
	resp, err := s.Client.GetHistoricalCancellations(ctx, propertyID, roomTypeID, date.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}
	return resp.Value.InexactFloat64(), nil
}

// ExecuteAction converte a ação do domínio para o formato do PMS e a envia
func (s *PMSService) ExecuteAction(ctx context.Context, propertyID string, action domain.Action) error {
	resp, err := s.Client.PostAction(ctx, propertyID, ToActionRequest(action))
	if err != nil {
		return err
	}

	if !resp.Accepted {
		return fmt.Errorf("ação %s recusada pelo PMS", action.Type)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"property_id": propertyID,
		"action_type": action.Type,
		"pms_id":      resp.ID,
	}).Info("Ação aplicada no PMS")

	return nil
}

func ToActionRequest(action domain.Action) pmsdomain.ActionRequest {
	params := action.Parameters
	return pmsdomain.ActionRequest{
		Type: string(action.Type),
		Parameters: pmsdomain.ActionParameters{
			Adjustment:       decimal.NewFromFloat(params.Adjustment),
			AdjustmentType:   string(params.AdjustmentType),
			MaxAdjustment:    decimal.NewFromFloat(params.MaxAdjustment),
			MinimumStay:      params.MinimumStay,
			UpgradeIncentive: decimal.NewFromFloat(params.UpgradeIncentive),
			RoomTypeID:       params.RoomTypeID,
		},
		Execution: string(action.Execution),
	}
}
