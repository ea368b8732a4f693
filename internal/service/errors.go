// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Domain failures reported to the caller as failed result envelopes. They are
// recoverable and never abort the session.
var (
	// ErrUsernameTaken indicates a registration attempt with an existing
	// username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials indicates a login with an unknown username or a
	// mismatched password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrBuyerNotFound indicates the paying user does not exist.
	ErrBuyerNotFound = errors.New("buyer not found")
	// ErrSellerNotFound indicates the receiving user does not exist.
	ErrSellerNotFound = errors.New("seller not found")
	// ErrItemNotFound indicates the referenced listing does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemAlreadySold indicates the listing's sold flag is already set.
	ErrItemAlreadySold = errors.New("item is already sold")
	// ErrSellerMismatch indicates the listing's stored seller differs from
	// the seller named in the payment.
	ErrSellerMismatch = errors.New("seller doesn't own this item")
	// ErrInsufficientFunds indicates the buyer's balance is below the
	// listing's price.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrRecipientNotFound indicates a message addressed to an unknown user.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrNotOwner indicates a delete attempt on a listing owned by someone
	// else.
	ErrNotOwner = errors.New("can only delete your own items")
)
