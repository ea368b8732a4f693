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

// messageService is the concrete implementation of MessageService. It also
// serves the transaction-history view, which is a read of the same kind of
// append-only log.
type messageService struct {
	market store.Market
	logger *logger.Logger
}

// NewMessageService constructs a MessageService backed by market.
func NewMessageService(market store.Market, logger *logger.Logger) MessageService {
	return &messageService{
		market: market,
		logger: logger,
	}
}

// Send appends a message after checking the recipient exists. The sender is
// taken from the authenticated session and is not re-validated; the item id
// is carried as-is (zero means a general message).
func (m *messageService) Send(ctx context.Context, sender, recipient, content string, itemID int64) error {
	err := m.market.Update(func(tx *store.Txn) error {
		if _, ok := tx.User(recipient); !ok {
			return ErrRecipientNotFound
		}

		tx.AddMessage(models.Message{
			Sender:    sender,
			Recipient: recipient,
			Content:   content,
			ItemID:    itemID,
			SentAt:    time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	persistBestEffort(ctx, m.market)

	logger.FromContext(ctx).Info().
		Str("sender", sender).
		Str("recipient", recipient).
		Msg("message sent")

	return nil
}

// For returns messages where username is sender or recipient.
func (m *messageService) For(ctx context.Context, username string) []models.Message {
	return m.market.MessagesFor(username)
}

// TransactionsFor returns transactions where username is buyer or seller.
func (m *messageService) TransactionsFor(ctx context.Context, username string) []models.Transaction {
	return m.market.TransactionsFor(username)
}
