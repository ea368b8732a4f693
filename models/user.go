// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StartingBalance is the balance credited to every freshly registered user.
const StartingBalance = 100.0

// User represents a marketplace account.
// The username is the sole lookup key and is case-sensitive; it never changes
// after registration.
type User struct {
	// Username is the unique, immutable account identifier.
	Username string `json:"username"`

	// Password is the opaque credential compared by plain equality during
	// login. It is stored as received; credential hardening is handled
	// outside this system.
	Password string `json:"password"`

	// Balance is the account's current funds. It is mutated only by the
	// payment engine, which checks sufficiency before any transfer, so a
	// processed payment can never drive it negative.
	Balance float64 `json:"balance"`
}

// NewUser constructs a User with the default starting balance.
func NewUser(username, password string) User {
	return User{
		Username: username,
		Password: password,
		Balance:  StartingBalance,
	}
}
