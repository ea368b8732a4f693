// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoItem is the sentinel item id carried by a Result that is not associated
// with any particular listing.
const NoItem int64 = -1

// Result is the uniform outcome envelope returned for every command that does
// not produce a list or scalar payload. Domain failures are reported through
// it with Success=false; they never terminate the session.
type Result struct {
	// Success reports whether the command took effect.
	Success bool `json:"success"`

	// Code is a stable machine-readable failure kind (empty on success).
	Code string `json:"code,omitempty"`

	// Message is the human-readable outcome description.
	Message string `json:"message"`

	// ItemID is the listing the result refers to, or NoItem.
	ItemID int64 `json:"item_id"`
}

// OK builds a successful Result with no associated item.
func OK(message string) Result {
	return Result{Success: true, Message: message, ItemID: NoItem}
}

// OKItem builds a successful Result tied to a listing.
func OKItem(message string, itemID int64) Result {
	return Result{Success: true, Message: message, ItemID: itemID}
}

// Fail builds a failed Result with a machine-readable code.
func Fail(code, message string) Result {
	return Result{Success: false, Code: code, Message: message, ItemID: NoItem}
}
