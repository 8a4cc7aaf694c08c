package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/middleware"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

const defaultHistoryLimit = 50

// propertyRequest extrai a propriedade da rota e a data da query, validando o acesso do usuário.
// Retorna false quando a resposta de erro já foi escrita.
func propertyRequest(w http.ResponseWriter, r *http.Request) (string, time.Time, bool) {
	propertyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if propertyID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da propriedade não fornecido", nil)
		return "", time.Time{}, false
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", time.Time{}, false
	}

	if !claims.CanAccessProperty(propertyID) {
		apiErrors.WriteError(w, apiErrors.ErrPropertyForbidden, "Usuário sem acesso à propriedade", map[string]any{
			"property_id": propertyID,
		})
		return "", time.Time{}, false
	}

	date, err := utils.ParseDate(r.URL.Query().Get("date"), time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
		return "", time.Time{}, false
	}

	return propertyID, date, true
}

// GetYieldDashboard retorna o painel de yield da propriedade na data
func GetYieldDashboard(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, date, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		dashboard, err := service.AnalyzeYieldOpportunities(r.Context(), propertyID, date)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, dashboard); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func GetRevenueOptimization(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, date, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		result, err := service.Optimize(r.Context(), propertyID, date)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func GetOverbooking(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, date, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		recommendations, err := service.ComputeOverbooking(r.Context(), propertyID, date)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, recommendations); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func GetBookingPace(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, date, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		pace, err := service.CalculateBookingPace(r.Context(), propertyID, date)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, pace); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// ClearYieldCache invalida o painel em cache da propriedade na data
func ClearYieldCache(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, date, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		service.ClearCache(propertyID, date)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"property_id": propertyID,
			"date":        date.Format(time.DateOnly),
		}).Info("Cache de yield invalidado")

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetOptimizationHistory lista as últimas execuções de otimização da propriedade
func GetOptimizationHistory(service yielding.YieldManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, _, ok := propertyRequest(w, r)
		if !ok {
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.History(r.Context(), propertyID, limit)
		if err != nil {
			handleYieldError(w, r, err)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, runs); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}
