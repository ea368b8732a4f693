// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Transaction is the immutable record of one completed sale. Transactions are
// appended by the payment engine and never deleted, even when the buyer or
// seller account is removed later.
type Transaction struct {
	// ID is assigned by the store from a monotonic counter, independent of
	// the item id counter.
	ID int64 `json:"id"`

	// Buyer and Seller are username copies taken at sale time.
	Buyer  string `json:"buyer"`
	Seller string `json:"seller"`

	// ItemID identifies the sold listing.
	ItemID int64 `json:"item_id"`

	// Amount is a copy of the item's price at the moment of sale.
	Amount float64 `json:"amount"`

	// Timestamp records when the payment was processed.
	Timestamp time.Time `json:"timestamp"`
}
