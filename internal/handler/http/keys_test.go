// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillchat/chatvault/internal/logger"
	"github.com/quillchat/chatvault/internal/service"
	"github.com/quillchat/chatvault/internal/store"
	"github.com/quillchat/chatvault/models"
)

// mockKeyService implements service.KeyService for unit tests.
type mockKeyService struct {
	upsertKeyFn func(ctx context.Context, userID int64, record models.WrappedKeyRecord) error
	getKeyFn    func(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error)
}

func (m *mockKeyService) UpsertKey(ctx context.Context, userID int64, record models.WrappedKeyRecord) error {
	return m.upsertKeyFn(ctx, userID, record)
}

func (m *mockKeyService) GetKey(ctx context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error) {
	return m.getKeyFn(ctx, userID, conversationID)
}

// newKeyRouter builds the full router with the auth middleware resolving
// every bearer token to userID 42. Key endpoint tests run through the router
// so chi URL parameters and the middleware chain are exercised.
func newKeyRouter(t *testing.T, keys service.KeyService) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "expired" {
				return models.Token{}, service.ErrTokenIsExpired
			}
			return models.Token{SignedString: tokenString, UserID: 42}, nil
		},
	}
	h := NewHandler(&service.Services{Auth: auth, Keys: keys}, logger.Nop())
	return h.Init()
}

func TestUpsertKey_StoresRecordForTokenUser(t *testing.T) {
	var gotUserID int64
	var gotRecord models.WrappedKeyRecord

	keys := &mockKeyService{
		upsertKeyFn: func(_ context.Context, userID int64, record models.WrappedKeyRecord) error {
			gotUserID = userID
			gotRecord = record
			return nil
		},
	}
	router := newKeyRouter(t, keys)

	body, err := json.Marshal(models.UpsertKeyRequest{
		WrappedKey:    "d3JhcHBlZA==",
		WrappingNonce: "bm9uY2U=",
		KeyHash:       strings.Repeat("ab", 32),
		KeyVersion:    1,
		Algorithm:     models.AlgorithmAESGCM,
	})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPut, "/api/keys/conv-1", strings.NewReader(string(body)))
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "conv-1", gotRecord.ConversationID)
	assert.Equal(t, "d3JhcHBlZA==", gotRecord.Key.Ciphertext)
	assert.Equal(t, "bm9uY2U=", gotRecord.Key.Nonce)
	assert.Equal(t, models.AlgorithmAESGCM, gotRecord.Algorithm)
}

func TestUpsertKey_InvalidData(t *testing.T) {
	keys := &mockKeyService{
		upsertKeyFn: func(_ context.Context, _ int64, _ models.WrappedKeyRecord) error {
			return service.ErrInvalidDataProvided
		},
	}
	router := newKeyRouter(t, keys)

	r := httptest.NewRequest(http.MethodPut, "/api/keys/conv-1", strings.NewReader(`{}`))
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertKey_NoToken(t *testing.T) {
	keys := &mockKeyService{
		upsertKeyFn: func(_ context.Context, _ int64, _ models.WrappedKeyRecord) error {
			t.Fatal("service must not be reached without a token")
			return nil
		},
	}
	router := newKeyRouter(t, keys)

	r := httptest.NewRequest(http.MethodPut, "/api/keys/conv-1", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetKey_ReturnsRecord(t *testing.T) {
	keys := &mockKeyService{
		getKeyFn: func(_ context.Context, userID int64, conversationID string) (models.WrappedKeyRecord, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "conv-9", conversationID)
			return models.WrappedKeyRecord{
				ConversationID: conversationID,
				Key:            models.WrappedKey{Ciphertext: "d3JhcHBlZA==", Nonce: "bm9uY2U="},
				KeyHash:        strings.Repeat("cd", 32),
				KeyVersion:     1,
				Algorithm:      models.AlgorithmAESGCM,
			}, nil
		},
	}
	router := newKeyRouter(t, keys)

	r := httptest.NewRequest(http.MethodGet, "/api/keys/conv-9", nil)
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.KeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conv-9", resp.ConversationID)
	assert.Equal(t, "d3JhcHBlZA==", resp.WrappedKey)
	assert.Equal(t, "bm9uY2U=", resp.WrappingNonce)
	assert.Equal(t, 1, resp.KeyVersion)
}

func TestGetKey_NotFound(t *testing.T) {
	keys := &mockKeyService{
		getKeyFn: func(_ context.Context, _ int64, _ string) (models.WrappedKeyRecord, error) {
			return models.WrappedKeyRecord{}, store.ErrKeyRecordNotFound
		},
	}
	router := newKeyRouter(t, keys)

	r := httptest.NewRequest(http.MethodGet, "/api/keys/missing", nil)
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetKey_ExpiredToken(t *testing.T) {
	keys := &mockKeyService{
		getKeyFn: func(_ context.Context, _ int64, _ string) (models.WrappedKeyRecord, error) {
			t.Fatal("service must not be reached with an expired token")
			return models.WrappedKeyRecord{}, nil
		},
	}
	router := newKeyRouter(t, keys)

	r := httptest.NewRequest(http.MethodGet, "/api/keys/conv-1", nil)
	r.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
