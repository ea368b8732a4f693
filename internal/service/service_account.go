// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

// accountService is the concrete implementation of AccountService.
// Credentials are compared by plain equality; hardening of the stored
// credential is outside this system's scope.
type accountService struct {
	market store.Market
	logger *logger.Logger
}

// NewAccountService constructs an AccountService backed by market.
func NewAccountService(market store.Market, logger *logger.Logger) AccountService {
	return &accountService{
		market: market,
		logger: logger,
	}
}

// Register creates a user with the default starting balance. The uniqueness
// check and the insert run in one critical section so two concurrent
// registrations of the same username cannot both succeed.
func (a *accountService) Register(ctx context.Context, username, password string) error {
	err := a.market.Update(func(tx *store.Txn) error {
		if _, exists := tx.User(username); exists {
			return ErrUsernameTaken
		}

		tx.PutUser(models.NewUser(username, password))
		return nil
	})
	if err != nil {
		return err
	}

	persistBestEffort(ctx, a.market)

	logger.FromContext(ctx).Info().Str("username", username).Msg("user registered")

	return nil
}

// Login verifies the credential by equality. The failure is the same for an
// unknown username and a wrong password.
func (a *accountService) Login(ctx context.Context, username, password string) (models.User, error) {
	user, ok := a.market.User(username)
	if !ok || user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteAccount removes every listing owned by the user, then the user
// entry, in one critical section. Messages and transactions mentioning the
// username stay in their logs as historical records.
func (a *accountService) DeleteAccount(ctx context.Context, username string) error {
	err := a.market.Update(func(tx *store.Txn) error {
		for _, item := range tx.ItemsBySeller(username) {
			tx.RemoveItem(item.ID)
		}

		tx.RemoveUser(username)
		return nil
	})
	if err != nil {
		return err
	}

	persistBestEffort(ctx, a.market)

	logger.FromContext(ctx).Info().Str("username", username).Msg("account deleted")

	return nil
}

// Balance returns the user's current balance, or false if the user no longer
// exists (e.g. deleted through another connection).
func (a *accountService) Balance(ctx context.Context, username string) (float64, bool) {
	user, ok := a.market.User(username)
	if !ok {
		return 0, false
	}

	return user.Balance, true
}
