// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SnapshotVersion identifies the current on-disk snapshot schema.
const SnapshotVersion = 1

// Snapshot is the wholesale serialized copy of the marketplace state written
// to durable storage after every mutating command and read back at startup.
type Snapshot struct {
	Version int `json:"version"`

	Users map[string]User `json:"users"`
	Items map[int64]Item  `json:"items"`

	Messages     []Message     `json:"messages"`
	Transactions []Transaction `json:"transactions"`

	// NextItemID and NextTransactionID preserve the monotonic counters so
	// ids are never reused across restarts.
	NextItemID        int64 `json:"next_item_id"`
	NextTransactionID int64 `json:"next_transaction_id"`
}
