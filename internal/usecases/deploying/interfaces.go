package deploying

import (
	"context"
	"time"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// AdPlatform cria e remove os objetos remotos de uma campanha.
// Um id vazio com erro nil significa que a plataforma não devolveu id.
type AdPlatform interface {
	CreateCampaign(ctx context.Context, auth domain.PlatformAuth, req *domain.CampaignRequest) (string, error)
	CreateAdSet(ctx context.Context, auth domain.PlatformAuth, req *domain.AdSetRequest) (string, error)
	CreateAdCreative(ctx context.Context, auth domain.PlatformAuth, req *domain.AdCreativeRequest) (string, error)
	CreateAd(ctx context.Context, auth domain.PlatformAuth, req *domain.AdRequest) (string, error)
	DeleteCampaign(ctx context.Context, auth domain.PlatformAuth, campaignID string) error
}

type StrategyCatalog interface {
	// Resolve devolve a estratégia pelo id ou a primeira do catálogo
	Resolve(id string) *domain.MarketingStrategy
	FirstCompatible(platform domain.Platform) (*domain.MarketingStrategy, bool)
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}

type RecordRepository interface {
	Save(ctx context.Context, record *domain.DeploymentRecord) error
	ListByNamespace(ctx context.Context, namespace string, limit int) ([]*domain.DeploymentRecord, error)
}

type WorkspaceStore interface {
	GetBusiness(ctx context.Context, namespace string) (*domain.BusinessProfile, error)
	ListAssets(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error)
	SaveLaunchedCampaign(ctx context.Context, namespace string, campaign *domain.LaunchedCampaign) error
}
