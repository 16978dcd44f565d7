package http

import (
	"net/http"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	auth, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", auth.User.ID).Msg("user signed up")
	utils.WriteJSON(w, auth, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	auth, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", auth.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, auth, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := utils.GetTokenIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	resp, err := h.services.AuthService.Logout(r.Context(), tokenID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
