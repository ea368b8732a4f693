// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-marketplace/models"

// Txn is the view handed to an [Store.Update] closure. All methods operate on
// the already-locked store, so a closure can read, decide, and write as one
// critical section — the payment transfer relies on this to guarantee that no
// two concurrent purchases both observe an item as unsold.
//
// A Txn must not escape its closure.
type Txn struct {
	store *Store
}

// User returns the user with the given username, if present.
func (tx *Txn) User(username string) (models.User, bool) {
	user, ok := tx.store.users[username]
	return user, ok
}

// PutUser inserts or overwrites a user keyed by username.
func (tx *Txn) PutUser(user models.User) {
	tx.store.users[user.Username] = user
}

// RemoveUser removes the user entry only.
func (tx *Txn) RemoveUser(username string) {
	delete(tx.store.users, username)
}

// Item returns the item with the given id, if present.
func (tx *Txn) Item(id int64) (models.Item, bool) {
	item, ok := tx.store.items[id]
	return item, ok
}

// PutItem overwrites an existing item (or inserts one with its current id).
func (tx *Txn) PutItem(item models.Item) {
	tx.store.items[item.ID] = item
}

// AddItem assigns the next item id, stores the item, and returns the id.
func (tx *Txn) AddItem(item models.Item) int64 {
	return tx.store.addItemLocked(item)
}

// RemoveItem removes the item with the given id.
func (tx *Txn) RemoveItem(id int64) {
	delete(tx.store.items, id)
}

// ItemsBySeller returns all items listed by seller, sorted by id.
func (tx *Txn) ItemsBySeller(seller string) []models.Item {
	return tx.store.itemsBySellerLocked(seller)
}

// AddMessage appends a message to the log.
func (tx *Txn) AddMessage(message models.Message) {
	tx.store.messages = append(tx.store.messages, message)
}

// AddTransaction assigns the next transaction id, appends the record, and
// returns the stored record.
func (tx *Txn) AddTransaction(transaction models.Transaction) models.Transaction {
	return tx.store.addTransactionLocked(transaction)
}
