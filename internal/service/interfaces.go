// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

// AccountService manages user registration, authentication, and account
// lifecycle.
type AccountService interface {
	// Register creates a user with the default starting balance.
	// Returns ErrUsernameTaken if the username already exists.
	Register(ctx context.Context, username, password string) error

	// Login verifies the credential by equality and returns the user.
	// Returns ErrInvalidCredentials if the user is absent or the password
	// does not match.
	Login(ctx context.Context, username, password string) (models.User, error)

	// DeleteAccount removes the user and all items the user listed.
	// Messages and transactions mentioning the username are retained as
	// historical records.
	DeleteAccount(ctx context.Context, username string) error

	// Balance returns the user's current balance, or false if the user no
	// longer exists.
	Balance(ctx context.Context, username string) (float64, bool)
}

// ListingService manages item listings.
type ListingService interface {
	// AddItem creates an unsold listing for seller and returns its id.
	AddItem(ctx context.Context, seller, title, description string, price float64) (int64, error)

	// Item returns the listing with the given id, if present.
	Item(ctx context.Context, id int64) (models.Item, bool)

	// SearchItems returns unsold listings matching query (case-insensitive
	// substring of title or description), ordered by id.
	SearchItems(ctx context.Context, query string) []models.Item

	// UserItems returns every listing owned by seller, ordered by id.
	UserItems(ctx context.Context, seller string) []models.Item

	// DeleteItem removes the listing. Returns ErrItemNotFound if absent and
	// ErrNotOwner if owner does not match the listing's seller.
	DeleteItem(ctx context.Context, owner string, itemID int64) error
}

// PaymentService executes the funds transfer and item-sale transition as one
// indivisible unit.
type PaymentService interface {
	// ProcessPayment transfers the item's price from buyer to seller, marks
	// the item sold, and records a transaction. The validation order and
	// failure kinds are fixed: ErrBuyerNotFound, ErrSellerNotFound,
	// ErrItemNotFound, ErrItemAlreadySold, ErrSellerMismatch,
	// ErrInsufficientFunds. Self-purchase is rejected by the session handler,
	// not here.
	ProcessPayment(ctx context.Context, buyer, seller string, itemID int64) (models.Transaction, error)

	// HasSufficientFunds reports whether username exists and holds at least
	// amount. It is a pure read.
	HasSufficientFunds(ctx context.Context, username string, amount float64) bool
}

// MessageService manages the append-only message log and the transaction
// history view.
type MessageService interface {
	// Send appends a message after checking the recipient exists.
	// Returns ErrRecipientNotFound otherwise. itemID zero means a general
	// message with no related listing.
	Send(ctx context.Context, sender, recipient, content string, itemID int64) error

	// For returns messages where username is sender or recipient, in
	// insertion order.
	For(ctx context.Context, username string) []models.Message

	// TransactionsFor returns transactions where username is buyer or
	// seller, in insertion order.
	TransactionsFor(ctx context.Context, username string) []models.Transaction
}
