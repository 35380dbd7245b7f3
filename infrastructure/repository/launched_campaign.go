package repository

import (
	"context"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

type LaunchedCampaignRepository interface {
	List(ctx context.Context, namespace string) ([]*domain.LaunchedCampaign, error)
	Save(ctx context.Context, namespace string, campaign *domain.LaunchedCampaign) error
}

type launchedCampaignRepository struct {
	store DocumentStore
}

func NewLaunchedCampaignRepository(store DocumentStore) LaunchedCampaignRepository {
	return &launchedCampaignRepository{
		store: store,
	}
}

func (r *launchedCampaignRepository) List(ctx context.Context, namespace string) ([]*domain.LaunchedCampaign, error) {
	campaigns := make([]*domain.LaunchedCampaign, 0)

	if _, err := r.store.GetJSON(ctx, namespace, campaignsDocument, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// Save mantém a campanha mais recente no topo
func (r *launchedCampaignRepository) Save(ctx context.Context, namespace string, campaign *domain.LaunchedCampaign) error {
	campaigns, err := r.List(ctx, namespace)
	if err != nil {
		return err
	}

	campaigns = append([]*domain.LaunchedCampaign{campaign}, campaigns...)

	return r.store.SetJSON(ctx, namespace, campaignsDocument, campaigns)
}
