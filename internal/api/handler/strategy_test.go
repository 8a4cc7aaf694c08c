package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding/mocks"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const validStrategyBody = `{
	"name": "Alta ocupação",
	"conditions": [{"type": "occupancy", "operator": "gte", "value": 0.8}],
	"actions": [{"type": "adjust_rate", "parameters": {"adjustment": 10, "adjustment_type": "percentage"}, "execution": "immediate"}],
	"priority": 5,
	"valid_from": "2024-01-01T00:00:00Z",
	"valid_to": "2024-12-31T00:00:00Z"
}`

func TestCreateStrategy(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		body           string
		setup          func(service *mocks.MockYieldManager)
		expectedStatus int
		validate       func(t *testing.T, body []byte)
	}{
		{
			name:   "Cria estratégia e limpa o cache",
			claims: managerClaims,
			body:   validStrategyBody,
			setup: func(service *mocks.MockYieldManager) {
				service.EXPECT().CreateStrategy(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, strategy domain.Strategy) (*domain.Strategy, error) {
						assert.Equal(t, "Alta ocupação", strategy.Name)
						assert.True(t, strategy.Active)
						assert.Equal(t, domain.OperatorGreaterThanEqual, strategy.Conditions[0].Operator)
						assert.Equal(t, domain.CadenceImmediate, strategy.Actions[0].Execution)
						strategy.ID = "abc123"
						return &strategy, nil
					})
				service.EXPECT().ClearAllCache()
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, body []byte) {
				var created domain.Strategy
				require.NoError(t, testJSON.Unmarshal(body, &created))
				assert.Equal(t, "abc123", created.ID)
				assert.Equal(t, 5, created.Priority)
			},
		},
		{
			name:   "Ação obrigatória ausente",
			claims: adminClaims,
			body: `{"name": "Sem ações", "actions": [],
				"valid_from": "2024-01-01T00:00:00Z", "valid_to": "2024-12-31T00:00:00Z"}`,
			setup:          func(service *mocks.MockYieldManager) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, testJSON.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidStrategy, apiErr.Code)
				assert.Contains(t, apiErr.Details, "Actions")
			},
		},
		{
			name:   "Operador desconhecido",
			claims: adminClaims,
			body: `{"name": "Operador", "conditions": [{"type": "occupancy", "operator": "maior", "value": 1}],
				"actions": [{"type": "adjust_rate"}],
				"valid_from": "2024-01-01T00:00:00Z", "valid_to": "2024-12-31T00:00:00Z"}`,
			setup:          func(service *mocks.MockYieldManager) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, testJSON.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidStrategy, apiErr.Code)
				assert.Contains(t, apiErr.Details, "Conditions[0].Operator")
			},
		},
		{
			name:           "Campo desconhecido no corpo",
			claims:         adminClaims,
			body:           `{"name": "x", "desconhecido": true}`,
			setup:          func(service *mocks.MockYieldManager) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, testJSON.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			},
		},
		{
			name:   "Janela de validade invertida",
			claims: adminClaims,
			body:   validStrategyBody,
			setup: func(service *mocks.MockYieldManager) {
				service.EXPECT().CreateStrategy(gomock.Any(), gomock.Any()).Return(nil,
					yielding.NewYieldError(fmt.Errorf("%w: %w", yielding.ErrValidation, yielding.ErrInvalidDateRange), apiErrors.ErrInvalidStrategy, "janela inválida"))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, testJSON.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidStrategy, apiErr.Code)
			},
		},
		{
			name:           "Visualizador não pode criar",
			claims:         viewerClaims,
			body:           validStrategyBody,
			setup:          func(service *mocks.MockYieldManager) {},
			expectedStatus: http.StatusForbidden,
			validate:       func(t *testing.T, body []byte) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockYieldManager(ctrl)
			tt.setup(service)

			rec := serve(Strategies(service), tt.claims, http.MethodPost, "/v1/strategies", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec.Body.Bytes())
		})
	}
}

func TestUpdateStrategy(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockYieldManager)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Atualiza prioridade",
			body: `{"priority": 20, "active": false}`,
			setup: func(service *mocks.MockYieldManager) {
				service.EXPECT().UpdateStrategy(gomock.Any(), "abc123", gomock.Any()).
					DoAndReturn(func(_ any, _ string, patch domain.StrategyPatch) (*domain.Strategy, error) {
						require.NotNil(t, patch.Priority)
						require.NotNil(t, patch.Active)
						assert.Nil(t, patch.Name)
						strategy := patch.Apply(domain.Strategy{ID: "abc123", Name: "x", Active: true})
						return &strategy, nil
					})
				service.EXPECT().ClearAllCache()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Estratégia inexistente",
			body: `{"priority": 20}`,
			setup: func(service *mocks.MockYieldManager) {
				service.EXPECT().UpdateStrategy(gomock.Any(), "abc123", gomock.Any()).Return(nil,
					yielding.NewYieldErrorWithID(yielding.ErrStrategyNotFound, apiErrors.ErrStrategyNotFound, "abc123", "estratégia abc123 não existe"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrStrategyNotFound,
		},
		{
			name:           "Ação inválida no patch",
			body:           `{"actions": [{"type": "desconto"}]}`,
			setup:          func(service *mocks.MockYieldManager) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidStrategy,
		},
		{
			name: "Erro sem código do motor",
			body: `{"priority": 1}`,
			setup: func(service *mocks.MockYieldManager) {
				service.EXPECT().UpdateStrategy(gomock.Any(), "abc123", gomock.Any()).Return(nil, errors.New("falha inesperada"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockYieldManager(ctrl)
			tt.setup(service)

			rec := serve(Strategies(service), managerClaims, http.MethodPut, "/v1/strategies/abc123", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestDeleteStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockYieldManager(ctrl)

	service.EXPECT().DeleteStrategy(gomock.Any(), "abc123").Return(nil)
	service.EXPECT().ClearAllCache()

	rec := serve(Strategies(service), adminClaims, http.MethodDelete, "/v1/strategies/abc123", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockYieldManager(ctrl)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	service.EXPECT().GetStrategies(gomock.Any()).Return(yielding.DefaultStrategies(now))

	rec := serve(Strategies(service), viewerClaims, http.MethodGet, "/v1/strategies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var strategies []domain.Strategy
	decodeBody(t, rec, &strategies)
	require.Len(t, strategies, 2)
	assert.Equal(t, "high-occupancy-rate-increase", strategies[0].ID)
}
