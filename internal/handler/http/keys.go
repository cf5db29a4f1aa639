// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/internal/utils"
	"github.com/quillchat/chatvault/models"
)

// upsertKey stores or replaces the caller's wrapped key for a conversation.
// The user scope comes from the bearer token, never from the body.
func (h *Handler) upsertKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}

	var req models.UpsertKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("upsert key: decode body")
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	record := models.WrappedKeyRecord{
		ConversationID: chi.URLParam(r, "conversationID"),
		Key: models.WrappedKey{
			Ciphertext: req.WrappedKey,
			Nonce:      req.WrappingNonce,
		},
		KeyHash:    req.KeyHash,
		KeyVersion: req.KeyVersion,
		Algorithm:  req.Algorithm,
	}

	if err := h.services.Keys.UpsertKey(r.Context(), userID, record); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).
			Str("conversation_id", record.ConversationID).
			Msg("upsert key: store record")
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getKey returns the caller's wrapped key for a conversation, or 404 when the
// account has no record for it.
func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, "missing user identity", http.StatusUnauthorized)
		return
	}

	conversationID := chi.URLParam(r, "conversationID")

	record, err := h.services.Keys.GetKey(r.Context(), userID, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrKeyRecordNotFound):
			writeError(w, store.ErrKeyRecordNotFound.Error(), http.StatusNotFound)
		default:
			log.Error().Err(err).
				Str("conversation_id", conversationID).
				Msg("get key: load record")
			writeError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := models.KeyResponse{
		ConversationID: record.ConversationID,
		WrappedKey:     record.Key.Ciphertext,
		WrappingNonce:  record.Key.Nonce,
		KeyHash:        record.KeyHash,
		KeyVersion:     record.KeyVersion,
		Algorithm:      record.Algorithm,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("get key: write response")
	}
}
