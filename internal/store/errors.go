// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrSnapshotVersion indicates the snapshot file was written by an
	// incompatible schema version.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)
