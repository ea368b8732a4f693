// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

// listingService is the concrete implementation of ListingService.
type listingService struct {
	market store.Market
	logger *logger.Logger
}

// NewListingService constructs a ListingService backed by market.
func NewListingService(market store.Market, logger *logger.Logger) ListingService {
	return &listingService{
		market: market,
		logger: logger,
	}
}

// AddItem creates an unsold listing for seller and returns the assigned id.
func (l *listingService) AddItem(ctx context.Context, seller, title, description string, price float64) (int64, error) {
	id := l.market.AddItem(models.Item{
		Title:       title,
		Description: description,
		Price:       price,
		Seller:      seller,
	})

	persistBestEffort(ctx, l.market)

	logger.FromContext(ctx).Info().
		Int64("item_id", id).
		Str("seller", seller).
		Float64("price", price).
		Msg("item listed")

	return id, nil
}

// Item returns the listing with the given id, if present.
func (l *listingService) Item(ctx context.Context, id int64) (models.Item, bool) {
	return l.market.Item(id)
}

// SearchItems delegates to the store's unsold-only case-insensitive search.
func (l *listingService) SearchItems(ctx context.Context, query string) []models.Item {
	return l.market.SearchItems(query)
}

// UserItems returns every listing owned by seller, sold or not.
func (l *listingService) UserItems(ctx context.Context, seller string) []models.Item {
	return l.market.ItemsBySeller(seller)
}

// DeleteItem removes the listing after checking it exists and belongs to
// owner. The check and the removal run in one critical section.
func (l *listingService) DeleteItem(ctx context.Context, owner string, itemID int64) error {
	err := l.market.Update(func(tx *store.Txn) error {
		item, ok := tx.Item(itemID)
		if !ok {
			return ErrItemNotFound
		}

		if item.Seller != owner {
			return ErrNotOwner
		}

		tx.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		return err
	}

	persistBestEffort(ctx, l.market)

	logger.FromContext(ctx).Info().Int64("item_id", itemID).Str("owner", owner).Msg("item deleted")

	return nil
}
