// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/go-marketplace/internal/protocol"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

// resultFromError maps a service-layer domain failure to the failed result
// envelope sent on the wire.
func resultFromError(err error) models.Result {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return models.Fail(protocol.CodeUsernameTaken, "Username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return models.Fail(protocol.CodeInvalidCredentials, "Invalid username or password")
	case errors.Is(err, service.ErrBuyerNotFound):
		return models.Fail(protocol.CodeBuyerNotFound, "Buyer not found")
	case errors.Is(err, service.ErrSellerNotFound):
		return models.Fail(protocol.CodeSellerNotFound, "Seller not found")
	case errors.Is(err, service.ErrItemNotFound):
		return models.Fail(protocol.CodeItemNotFound, "Item not found")
	case errors.Is(err, service.ErrItemAlreadySold):
		return models.Fail(protocol.CodeItemAlreadySold, "Item is already sold")
	case errors.Is(err, service.ErrSellerMismatch):
		return models.Fail(protocol.CodeSellerMismatch, "Seller doesn't own this item")
	case errors.Is(err, service.ErrInsufficientFunds):
		return models.Fail(protocol.CodeInsufficientFunds, "Insufficient funds")
	case errors.Is(err, service.ErrRecipientNotFound):
		return models.Fail(protocol.CodeRecipientNotFound, "Recipient not found")
	case errors.Is(err, service.ErrNotOwner):
		return models.Fail(protocol.CodeNotOwner, "You can only delete your own items")
	default:
		return models.Fail("", err.Error())
	}
}
