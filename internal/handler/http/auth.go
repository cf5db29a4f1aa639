// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/internal/utils"
	"github.com/quillchat/chatvault/models"
)

// register creates an account from the login, auth hash and encryption salt
// in the request body and returns a bearer token in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Error().Err(err).Msg("register: decode body")
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.services.Auth.RegisterUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrLoginAlreadyExists):
			writeError(w, store.ErrLoginAlreadyExists.Error(), http.StatusConflict)
		default:
			log.Error().Err(err).Str("login", user.Login).Msg("register: create user")
			writeError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.Auth.CreateToken(r.Context(), created)
	if err != nil {
		log.Error().Err(err).Str("login", created.Login).Msg("register: create token")
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}

// login verifies the presented auth hash and returns a fresh bearer token in
// the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Error().Err(err).Msg("login: decode body")
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	found, err := h.services.Auth.Login(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongAuthHash):
			// Do not reveal which of the two failed.
			writeError(w, "invalid login or auth hash", http.StatusUnauthorized)
		default:
			log.Error().Err(err).Str("login", user.Login).Msg("login: verify user")
			writeError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.Auth.CreateToken(r.Context(), found)
	if err != nil {
		log.Error().Err(err).Str("login", found.Login).Msg("login: create token")
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}

// salt returns the public KDF salt for a login. It is unauthenticated so a
// fresh device can bootstrap key derivation before it holds a token.
func (h *Handler) salt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	login := r.URL.Query().Get("login")

	user, err := h.services.Auth.Salt(r.Context(), login)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound):
			writeError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
		default:
			log.Error().Err(err).Str("login", login).Msg("salt: lookup")
			writeError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := models.SaltResponse{Login: user.Login, EncryptionSalt: user.EncryptionSalt}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("salt: write response")
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
