package pmsclient

import (
	"context"
	"net/url"

	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
)

func (c *PMSClient) GetRoomTypes(ctx context.Context, propertyID string) ([]pmsdomain.RoomType, error) {
	var response pmsdomain.RoomTypesResponse

	if err := c.getJSON(ctx, &response, nil, "properties", propertyID, "room-types"); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *PMSClient) GetHistoricalNoShows(ctx context.Context, propertyID, roomTypeID, date string) (pmsdomain.HistoricalRate, error) {
	return c.historicalRate(ctx, propertyID, roomTypeID, date, "no-shows")
}

func (c *PMSClient) GetHistoricalCancellations(ctx context.Context, propertyID, roomTypeID, date string) (pmsdomain.HistoricalRate, error) {
	return c.historicalRate(ctx, propertyID, roomTypeID, date, "cancellations")
}

func (c *PMSClient) historicalRate(ctx context.Context, propertyID, roomTypeID, date, resource string) (pmsdomain.HistoricalRate, error) {
	var response pmsdomain.HistoricalRate

	query := url.Values{}
	query.Set("date", date)

	err := c.getJSON(ctx, &response, query, "properties", propertyID, "room-types", roomTypeID, resource)
	return response, err
}
