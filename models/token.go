// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package models

import "github.com/golang-jwt/jwt/v5"

// Token bundles a parsed JWT with its signed string representation as issued
// by the key-store server after a successful register or login.
type Token struct {
	Token        *jwt.Token `json:"-"`
	SignedString string     `json:"token"`
	UserID       int64      `json:"-"`
}
