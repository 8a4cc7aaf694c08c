package pmsclient

import (
	"context"
	"net/url"
	"strconv"

	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
)

func (c *PMSClient) GetMetrics(ctx context.Context, propertyID, date string) (pmsdomain.Metrics, error) {
	var response pmsdomain.Metrics

	query := url.Values{}
	query.Set("date", date)

	err := c.getJSON(ctx, &response, query, "properties", propertyID, "metrics")
	return response, err
}

func (c *PMSClient) GetBookingsToDate(ctx context.Context, propertyID, targetDate, asOf string) (pmsdomain.BookingsToDate, error) {
	var response pmsdomain.BookingsToDate

	query := url.Values{}
	query.Set("target_date", targetDate)
	query.Set("as_of", asOf)

	err := c.getJSON(ctx, &response, query, "properties", propertyID, "bookings")
	return response, err
}

func (c *PMSClient) GetHistoricalPace(ctx context.Context, propertyID, targetDate string, daysOut int) (pmsdomain.HistoricalPace, error) {
	var response pmsdomain.HistoricalPace

	query := url.Values{}
	query.Set("target_date", targetDate)
	query.Set("days_out", strconv.Itoa(daysOut))

	err := c.getJSON(ctx, &response, query, "properties", propertyID, "pace", "historical")
	return response, err
}
