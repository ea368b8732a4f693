// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-marketplace/models"

// Market is the capability interface the service layer depends on. It is
// implemented by [Store]; keeping the services behind this interface lets a
// finer-grained or transactional backend replace the coarse-locked store
// without touching the session handler or the payment engine.
//
// Lookup operations never fail: an absent entity is reported through the
// boolean (or an empty slice), not an error.
type Market interface {
	// UpsertUser inserts or overwrites a user keyed by username. Uniqueness
	// checking is the caller's responsibility.
	UpsertUser(user models.User)
	// User returns the user with the given username, if present.
	User(username string) (models.User, bool)
	// RemoveUser removes the user entry only; it does not cascade to the
	// user's items.
	RemoveUser(username string)

	// AddItem assigns the next monotonic item id (overwriting whatever id the
	// argument carries), stores the item, and returns the assigned id.
	AddItem(item models.Item) int64
	// Item returns the item with the given id, if present.
	Item(id int64) (models.Item, bool)
	// RemoveItem removes the item with the given id. The id is never reused.
	RemoveItem(id int64)
	// SearchItems returns unsold items whose title or description contains
	// query case-insensitively, ordered by id. The empty query matches every
	// unsold item.
	SearchItems(query string) []models.Item
	// ItemsBySeller returns all items listed by seller, sold or not, ordered
	// by id.
	ItemsBySeller(seller string) []models.Item

	// AddMessage appends a message to the log.
	AddMessage(message models.Message)
	// MessagesFor returns messages where username is sender or recipient, in
	// insertion order.
	MessagesFor(username string) []models.Message

	// AddTransaction assigns the next monotonic transaction id, appends the
	// record to the log, and returns the stored record.
	AddTransaction(transaction models.Transaction) models.Transaction
	// TransactionsFor returns transactions where username is buyer or seller,
	// in insertion order.
	TransactionsFor(username string) []models.Transaction

	// Update runs fn under the store's exclusive lock, giving it multi-step
	// atomic access through [Txn]. The state mutated by fn is kept whether or
	// not fn returns an error; fn's error is returned as-is.
	Update(fn func(tx *Txn) error) error

	// Persist serializes the entire state to the snapshot file.
	Persist() error
	// Restore loads the snapshot back, replacing the in-memory state
	// wholesale. A missing snapshot file is a no-op, not an error.
	Restore() error
}
