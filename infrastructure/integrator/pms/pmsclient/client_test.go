package pmsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pmsdomain "github.com/vfg2006/yield-manager-api/infrastructure/integrator/pms/domain"
	"github.com/vfg2006/yield-manager-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *PMSClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.PMS{
		URL:           server.URL + "/api",
		APIKey:        "chave-teste",
		Timeout:       time.Second,
		RetryAttempts: 3,
	})
	client.retryDelay = time.Millisecond
	return client
}

func TestPMSClient_GetMetrics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/properties/hotel-centro/metrics", r.URL.Path)
		assert.Equal(t, "2024-03-15", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer chave-teste", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"property_id": "hotel-centro",
			"date": "2024-03-15",
			"occupancy_rate": "0.82",
			"average_daily_rate": "189.90",
			"available_rooms": 100,
			"sold_rooms": 82,
			"no_shows": 3,
			"cancellations": 5
		}`))
	})

	metrics, err := client.GetMetrics(context.Background(), "hotel-centro", "2024-03-15")

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("189.90").Equal(metrics.AverageDailyRate))
	assert.True(t, decimal.RequireFromString("0.82").Equal(metrics.OccupancyRate))
	assert.Equal(t, 82, metrics.SoldRooms)
	assert.Equal(t, 5, metrics.Cancellations)
}

func TestPMSClient_Retry(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []int
		expectedCalls int32
		validate      func(t *testing.T, resp pmsdomain.BookingsToDate, err error)
	}{
		{
			name:          "Repete após erro 503 e conclui com sucesso",
			statuses:      []int{http.StatusServiceUnavailable, http.StatusOK},
			expectedCalls: 2,
			validate: func(t *testing.T, resp pmsdomain.BookingsToDate, err error) {
				require.NoError(t, err)
				assert.Equal(t, 42, resp.Count)
			},
		},
		{
			name:          "Esgota as tentativas em erro 500",
			statuses:      []int{http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError},
			expectedCalls: 3,
			validate: func(t *testing.T, _ pmsdomain.BookingsToDate, err error) {
				require.Error(t, err)
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
			},
		},
		{
			name:          "Não repete erro 404",
			statuses:      []int{http.StatusNotFound},
			expectedCalls: 1,
			validate: func(t *testing.T, _ pmsdomain.BookingsToDate, err error) {
				require.Error(t, err)
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, "propriedade desconhecida", statusErr.Response.Error.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)
				status := tt.statuses[n-1]

				assert.Equal(t, "2024-03-15", r.URL.Query().Get("target_date"))
				assert.Equal(t, "2024-03-08", r.URL.Query().Get("as_of"))

				w.WriteHeader(status)
				switch status {
				case http.StatusOK:
					_, _ = w.Write([]byte(`{"target_date":"2024-03-15","as_of":"2024-03-08","count":42}`))
				case http.StatusNotFound:
					_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"propriedade desconhecida"}}`))
				}
			})

			resp, err := client.GetBookingsToDate(context.Background(), "hotel-centro", "2024-03-15", "2024-03-08")

			tt.validate(t, resp, err)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestPMSClient_GetRoomTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/hotel-centro/room-types", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"std","name":"Standard","inventory":60,"base_rate":"150.00"},{"id":"lux","name":"Luxo","inventory":20,"base_rate":320}]}`))
	})

	roomTypes, err := client.GetRoomTypes(context.Background(), "hotel-centro")

	require.NoError(t, err)
	require.Len(t, roomTypes, 2)
	assert.Equal(t, "std", roomTypes[0].ID)
	assert.True(t, decimal.NewFromInt(320).Equal(roomTypes[1].BaseRate))
}

func TestPMSClient_HistoricalRates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/properties/hotel-centro/room-types/std/no-shows":
			_, _ = w.Write([]byte(`{"room_type_id":"std","value":"2.5"}`))
		case "/api/properties/hotel-centro/room-types/std/cancellations":
			_, _ = w.Write([]byte(`{"room_type_id":"std","value":"4"}`))
		case "/api/properties/hotel-centro/pace/historical":
			assert.Equal(t, "30", r.URL.Query().Get("days_out"))
			_, _ = w.Write([]byte(`{"days_out":30,"average":"55.5"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	noShows, err := client.GetHistoricalNoShows(ctx, "hotel-centro", "std", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2.5, noShows.Value.InexactFloat64())

	cancellations, err := client.GetHistoricalCancellations(ctx, "hotel-centro", "std", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 4.0, cancellations.Value.InexactFloat64())

	pace, err := client.GetHistoricalPace(ctx, "hotel-centro", "2024-03-15", 30)
	require.NoError(t, err)
	assert.Equal(t, 55.5, pace.Average.InexactFloat64())
}

func TestPMSClient_PostAction(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/properties/hotel-centro/actions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "adjust_rate", body["type"])
		params := body["parameters"].(map[string]any)
		assert.Equal(t, "10", params["adjustment"])
		assert.Equal(t, "percentage", params["adjustment_type"])

		if atomic.LoadInt32(&calls) > 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"act-1","accepted":true}`))
	})

	action := pmsdomain.ActionRequest{
		Type: "adjust_rate",
		Parameters: pmsdomain.ActionParameters{
			Adjustment:     decimal.NewFromInt(10),
			AdjustmentType: "percentage",
		},
		Execution: "immediate",
	}

	resp, err := client.PostAction(context.Background(), "hotel-centro", action)
	require.NoError(t, err)
	assert.Equal(t, "act-1", resp.ID)
	assert.True(t, resp.Accepted)

	_, err = client.PostAction(context.Background(), "hotel-centro", action)
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "POST não deve ser repetido pelo cliente")
}
