package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

var validate = validator.New()

// validationDetails transforma os erros do validator em campo -> regra violada
func validationDetails(err error) (map[string]string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		key := strings.TrimPrefix(fieldErr.Namespace(), strings.Split(fieldErr.Namespace(), ".")[0]+".")
		details[key] = fieldErr.Tag()
	}
	return details, true
}

// ListStrategies retorna as estratégias cadastradas ordenadas por prioridade
func ListStrategies(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		strategies := service.GetStrategies(r.Context())

		if err := utils.WriteJSON(w, http.StatusOK, strategies); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func CreateStrategy(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateStrategyRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			logger.WithError(err).Warn("Corpo de estratégia inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			details, _ := validationDetails(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidStrategy, "Estratégia inválida", details)
			return
		}

		strategy, err := service.CreateStrategy(r.Context(), req.ToStrategy())
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		service.ClearAllCache()

		if err := utils.WriteJSON(w, http.StatusCreated, strategy); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// UpdateStrategy aplica uma atualização parcial na estratégia
func UpdateStrategy(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da estratégia não fornecido", nil)
			return
		}

		var patch domain.StrategyPatch
		if err := utils.DecodeJSON(r, &patch); err != nil {
			logger.WithError(err).Warn("Corpo de estratégia inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(patch); err != nil {
			details, _ := validationDetails(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidStrategy, "Estratégia inválida", details)
			return
		}

		strategy, err := service.UpdateStrategy(r.Context(), id, patch)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		service.ClearAllCache()

		if err := utils.WriteJSON(w, http.StatusOK, strategy); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func DeleteStrategy(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da estratégia não fornecido", nil)
			return
		}

		if err := service.DeleteStrategy(r.Context(), id); err != nil {
			handleYieldError(w, r, err)
			return
		}

		service.ClearAllCache()
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleYieldError converte os erros do motor de yield na resposta padronizada da API
func handleYieldError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var yieldErr *yielding.YieldError
	if errors.As(err, &yieldErr) {
		var details any
		if yieldErr.StrategyID != "" {
			details = map[string]any{"strategy_id": yieldErr.StrategyID}
		}

		if yieldErr.Code == apiErrors.ErrDatabaseOperation || yieldErr.Code == apiErrors.ErrInternalServer {
			logger.Error("Erro no motor de yield")
		} else {
			logger.Warn("Erro no motor de yield")
		}

		apiErrors.WriteError(w, yieldErr.Code, yieldErr.Error(), details)
		return
	}

	switch {
	case yielding.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStrategy, err.Error(), nil)
	case yielding.IsNotFoundError(err):
		apiErrors.WriteError(w, apiErrors.ErrStrategyNotFound, err.Error(), nil)
	case yielding.IsUpstreamError(err):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "Sistema de gestão da propriedade indisponível", nil)
	default:
		logger.Error("Erro inesperado no motor de yield")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
