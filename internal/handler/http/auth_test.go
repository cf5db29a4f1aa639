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

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	saltFn         func(ctx context.Context, login string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) Salt(ctx context.Context, login string) (models.User, error) {
	return m.saltFn(ctx, login)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{Auth: auth}, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// newTestRequest builds a request carrying a nop logger so handlers that call
// logger.FromRequest do not fall back to the global logger.
func newTestRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func TestRegister_ReturnsBearerToken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 7
			return user, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(7), user.UserID)
			return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := userBody(t, models.User{Login: "alice", AuthHash: "hash", EncryptionSalt: "salt"})
	r := newTestRequest(t, http.MethodPost, "/api/user/register", body)
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer signed-token", w.Header().Get("Authorization"))
}

func TestRegister_InvalidBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	r := newTestRequest(t, http.MethodPost, "/api/user/register", "{not json")
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithAuth(t, auth)

	r := newTestRequest(t, http.MethodPost, "/api/user/register", userBody(t, models.User{}))
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_LoginAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := userBody(t, models.User{Login: "alice", AuthHash: "hash", EncryptionSalt: "salt"})
	r := newTestRequest(t, http.MethodPost, "/api/user/register", body)
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 42
			return user, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "fresh-token", UserID: user.UserID}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := userBody(t, models.User{Login: "alice", AuthHash: "hash"})
	r := newTestRequest(t, http.MethodPost, "/api/user/login", body)
	w := httptest.NewRecorder()

	h.login(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer fresh-token", w.Header().Get("Authorization"))
}

func TestLogin_WrongAuthHash(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrWrongAuthHash
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := userBody(t, models.User{Login: "alice", AuthHash: "wrong"})
	r := newTestRequest(t, http.MethodPost, "/api/user/login", body)
	w := httptest.NewRecorder()

	h.login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	// Do not leak whether the login or the hash was wrong.
	assert.Equal(t, "invalid login or auth hash", errResp.Error)
}

func TestLogin_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := userBody(t, models.User{Login: "ghost", AuthHash: "hash"})
	r := newTestRequest(t, http.MethodPost, "/api/user/login", body)
	w := httptest.NewRecorder()

	h.login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSalt_ReturnsLoginAndSalt(t *testing.T) {
	auth := &mockAuthService{
		saltFn: func(_ context.Context, login string) (models.User, error) {
			assert.Equal(t, "alice", login)
			return models.User{Login: "alice", EncryptionSalt: "c2FsdA=="}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	r := newTestRequest(t, http.MethodGet, "/api/user/salt?login=alice", "")
	w := httptest.NewRecorder()

	h.salt(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.SaltResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Login)
	assert.Equal(t, "c2FsdA==", resp.EncryptionSalt)
}

func TestSalt_UnknownLogin(t *testing.T) {
	auth := &mockAuthService{
		saltFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newHandlerWithAuth(t, auth)

	r := newTestRequest(t, http.MethodGet, "/api/user/salt?login=ghost", "")
	w := httptest.NewRecorder()

	h.salt(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSalt_MissingLogin(t *testing.T) {
	auth := &mockAuthService{
		saltFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithAuth(t, auth)

	r := newTestRequest(t, http.MethodGet, "/api/user/salt", "")
	w := httptest.NewRecorder()

	h.salt(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
