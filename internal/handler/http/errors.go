// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected endpoint is
	// called without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// does not follow the `Bearer <token>` form.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the bearer token part of the header is
	// blank.
	ErrEmptyToken = errors.New("empty token")
)
