package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/yield-manager-api/internal/domain"
	"github.com/vfg2006/yield-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/middleware"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logger.WithError(err).Warn("ID de usuário inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		// Usuários comuns só consultam o próprio perfil
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para consultar este usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			handleAuthError(w, err, "Erro ao buscar usuário")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, user); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var user *domain.User
		if err := utils.DecodeJSON(r, &user); err != nil || user == nil {
			logger.WithError(err).Warn("Corpo de usuário inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateUser(r.Context(), user)
		if err != nil {
			logger.WithError(err).Warn("Falha ao criar usuário")
			handleAuthError(w, err, "Erro ao criar usuário")
			return
		}

		if err := utils.WriteJSON(w, http.StatusCreated, created); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários", nil)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, users); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}
