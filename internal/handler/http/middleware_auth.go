package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the user id and the token id in
// the request context under [utils.UserIDCtxKey] and [utils.TokenIDCtxKey].
//
// A missing, malformed, invalid, expired or revoked token is answered with
// 401 before any handler runs. A failure of the session store is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, service.ErrNoToken)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrAuth) {
				log.Info().Err(err).Msg("token rejected")
			}
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.TokenIDCtxKey, token.TokenID())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
