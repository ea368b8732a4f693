// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "errors"

var (
	// ErrSchemaVersion indicates a frame carrying a wire schema version this
	// build does not speak.
	ErrSchemaVersion = errors.New("unsupported protocol schema version")
)
