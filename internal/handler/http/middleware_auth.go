// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
	"github.com/quillchat/chatvault/internal/utils"
)

// auth validates the bearer token and puts the authenticated user ID into
// the request context under utils.UserIDCtxKey.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r)
		if err != nil {
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.Auth.ParseToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				writeError(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			}
			log.Warn().Err(err).Msg("auth: token rejected")
			writeError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from an `Authorization: Bearer
// <token>` header.
func getTokenFromAuthHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}
	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
