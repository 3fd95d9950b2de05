// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Andrea573
// Source: github.com/andrea573/allowlists

package allowlists

import "errors"

// Sentinel errors for allowlists operations.
var (
	// ErrUnknownAllowlist indicates a query for a name outside the fixed known set.
	ErrUnknownAllowlist = errors.New("unknown allowlist")
	// ErrNilRegistry indicates a nil Registry receiver.
	ErrNilRegistry = errors.New("registry is nil")
)
