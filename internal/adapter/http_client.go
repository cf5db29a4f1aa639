// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/quillchat/chatvault/models"
)

// HTTPKeyStoreConfig configures the REST client for the key-store server.
type HTTPKeyStoreConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpKeyStore struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPKeyStore constructs a [RemoteKeyStore] speaking the server's REST
// API.
func NewHTTPKeyStore(cfg HTTPKeyStoreConfig) RemoteKeyStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpKeyStore{client: cli}
}

func (h *httpKeyStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpKeyStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpKeyStore) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, EncryptionSalt: user.EncryptionSalt}, nil
}

func (h *httpKeyStore) RequestSalt(ctx context.Context, login string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("login", login).
		Get("/api/user/salt")
	if err != nil {
		return models.User{}, fmt.Errorf("request salt: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var sr models.SaltResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.User{}, fmt.Errorf("decode salt response: %w", err)
	}

	return models.User{Login: sr.Login, EncryptionSalt: sr.EncryptionSalt}, nil
}

func (h *httpKeyStore) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpKeyStore) UpsertKey(ctx context.Context, record models.WrappedKeyRecord) error {
	req := models.UpsertKeyRequest{
		WrappedKey:    record.Key.Ciphertext,
		WrappingNonce: record.Key.Nonce,
		KeyHash:       record.KeyHash,
		KeyVersion:    record.KeyVersion,
		Algorithm:     record.Algorithm,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/keys/" + record.ConversationID)
	if err != nil {
		return fmt.Errorf("upsert key request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpKeyStore) GetKey(ctx context.Context, conversationID string) (models.WrappedKeyRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/keys/" + conversationID)
	if err != nil {
		return models.WrappedKeyRecord{}, fmt.Errorf("get key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WrappedKeyRecord{}, err
	}

	var kr models.KeyResponse
	if err = json.Unmarshal(resp.Body(), &kr); err != nil {
		return models.WrappedKeyRecord{}, fmt.Errorf("decode key response: %w", err)
	}

	return models.WrappedKeyRecord{
		ConversationID: kr.ConversationID,
		Key: models.WrappedKey{
			Ciphertext: kr.WrappedKey,
			Nonce:      kr.WrappingNonce,
		},
		KeyHash:    kr.KeyHash,
		KeyVersion: kr.KeyVersion,
		Algorithm:  kr.Algorithm,
	}, nil
}

func (h *httpKeyStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
