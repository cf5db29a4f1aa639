// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither an HTTP
// nor a gRPC address is configured, so no transport handler could be built.
// Startup treats this as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
