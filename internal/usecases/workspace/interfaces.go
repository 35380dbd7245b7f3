package workspace

import (
	"context"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type BusinessStore interface {
	Get(ctx context.Context, namespace string) (*domain.BusinessProfile, error)
	Save(ctx context.Context, namespace string, business *domain.BusinessProfile) error
}

type AssetLibrary interface {
	List(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error)
	Save(ctx context.Context, namespace string, asset *domain.CreativeAsset) (bool, error)
	Delete(ctx context.Context, namespace string, id string) (bool, error)
}

type CampaignLog interface {
	List(ctx context.Context, namespace string) ([]*domain.LaunchedCampaign, error)
	Save(ctx context.Context, namespace string, campaign *domain.LaunchedCampaign) error
}

// CopyGenerator escreve textos de anúncio para o negócio; não anexa mídia
type CopyGenerator interface {
	GenerateCopy(ctx context.Context, business *domain.BusinessProfile, strategy *domain.MarketingStrategy, count int) ([]*domain.CreativeAsset, error)
}

type StrategyResolver interface {
	Resolve(id string) *domain.MarketingStrategy
}
