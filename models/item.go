// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item represents a single listing offered for sale.
//
// The ID is assigned by the store from a monotonic counter starting at 1 and
// is never reused within a process lifetime, even after the item is deleted.
type Item struct {
	// ID is the store-assigned listing identifier.
	ID int64 `json:"id"`

	// Title is the short listing headline shown in search results.
	Title string `json:"title"`

	// Description is the free-text listing body.
	Description string `json:"description"`

	// Price is the asking price copied into the transaction at sale time.
	Price float64 `json:"price"`

	// Seller is the username of the listing owner. It is a copy of the
	// username string, not a live reference to the User record.
	Seller string `json:"seller"`

	// Sold marks the item as no longer purchasable. It flips to true exactly
	// once, by a successful payment.
	Sold bool `json:"sold"`
}
