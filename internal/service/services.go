package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

type Services struct {
	AccountService AccountService
	ListingService ListingService
	PaymentService PaymentService
	MessageService MessageService
}

func NewServices(market store.Market, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(market, logger),
		ListingService: NewListingService(market, logger),
		PaymentService: NewPaymentService(market, logger),
		MessageService: NewMessageService(market, logger),
	}
}

// persistBestEffort triggers a snapshot write after a mutation. A persistence
// failure is logged and does not roll back the in-memory mutation; callers
// relying on durability must treat it as a warning, not a transaction abort.
func persistBestEffort(ctx context.Context, market store.Market) {
	if err := market.Persist(); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("snapshot persist failed, in-memory state stands")
	}
}
