package tracking

import (
	"context"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type BusinessReader interface {
	GetBusiness(ctx context.Context, namespace string) (*domain.BusinessProfile, error)
}

// ConversionSender publica eventos no pixel do negócio; token vazio usa o token do sistema
type ConversionSender interface {
	SendConversionEvents(ctx context.Context, token, pixelID string, events []domain.ConversionEvent) (*domain.ConversionReceipt, error)
}
