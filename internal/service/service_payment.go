// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

// paymentService is the concrete implementation of PaymentService.
//
// The whole validate-then-apply sequence of a payment runs inside one
// store.Update critical section, so no two concurrent payments can both
// observe the same item as unsold: exactly one wins, the rest fail with
// ErrItemAlreadySold.
type paymentService struct {
	market store.Market
	logger *logger.Logger
}

// NewPaymentService constructs a PaymentService backed by market.
func NewPaymentService(market store.Market, logger *logger.Logger) PaymentService {
	return &paymentService{
		market: market,
		logger: logger,
	}
}

// ProcessPayment performs, in order, with short-circuit failure at each step:
// resolve buyer, resolve seller, resolve item, reject already-sold, reject
// seller mismatch, reject insufficient funds — then debits the buyer, credits
// the seller, flips the sold flag, and appends the transaction record, all
// under a single critical section. A snapshot write is triggered afterwards.
//
// Buying one's own item is rejected one layer above, by the session handler;
// this engine has no self-purchase check.
func (p *paymentService) ProcessPayment(ctx context.Context, buyer, seller string, itemID int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var transaction models.Transaction
	err := p.market.Update(func(tx *store.Txn) error {
		buyerUser, ok := tx.User(buyer)
		if !ok {
			return ErrBuyerNotFound
		}

		sellerUser, ok := tx.User(seller)
		if !ok {
			return ErrSellerNotFound
		}

		item, ok := tx.Item(itemID)
		if !ok {
			return ErrItemNotFound
		}

		if item.Sold {
			return ErrItemAlreadySold
		}

		if item.Seller != seller {
			return ErrSellerMismatch
		}

		if buyerUser.Balance < item.Price {
			return ErrInsufficientFunds
		}

		buyerUser.Balance -= item.Price
		sellerUser.Balance += item.Price
		item.Sold = true

		tx.PutUser(buyerUser)
		tx.PutUser(sellerUser)
		tx.PutItem(item)

		transaction = tx.AddTransaction(models.Transaction{
			Buyer:     buyer,
			Seller:    seller,
			ItemID:    itemID,
			Amount:    item.Price,
			Timestamp: time.Now(),
		})

		return nil
	})
	if err != nil {
		log.Debug().
			Str("buyer", buyer).
			Str("seller", seller).
			Int64("item_id", itemID).
			Err(err).
			Msg("payment rejected")
		return models.Transaction{}, err
	}

	persistBestEffort(ctx, p.market)

	log.Info().
		Int64("transaction_id", transaction.ID).
		Str("buyer", transaction.Buyer).
		Str("seller", transaction.Seller).
		Int64("item_id", transaction.ItemID).
		Float64("amount", transaction.Amount).
		Msg("payment processed")

	return transaction, nil
}

// HasSufficientFunds reports whether username exists and holds at least
// amount. False if the user is absent.
func (p *paymentService) HasSufficientFunds(ctx context.Context, username string, amount float64) bool {
	user, ok := p.market.User(username)
	if !ok {
		return false
	}

	return user.Balance >= amount
}
