// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is one entry in the append-only message log. Messages are immutable
// after creation and are retained even when the accounts they mention are
// deleted.
type Message struct {
	// Sender and Recipient are username copies; only the recipient's
	// existence is checked at send time.
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`

	// Content is the free-text message body.
	Content string `json:"content"`

	// ItemID links the message to a listing. Zero means a general message
	// with no related item; the id is not checked against live listings.
	ItemID int64 `json:"item_id"`

	// SentAt is set once at construction.
	SentAt time.Time `json:"sent_at"`
}
