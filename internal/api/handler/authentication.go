package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/yield-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/yield-manager-api/pkg/apiErrors"
	"github.com/vfg2006/yield-manager-api/pkg/log"
	"github.com/vfg2006/yield-manager-api/pkg/middleware"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Falha no login")
			handleAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, LoginResponse{Token: token}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		// Obter o perfil completo do usuário através do ID presente no token
		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			handleAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, user); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// handleAuthError trata os erros do autenticador e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error, fallbackMessage string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
