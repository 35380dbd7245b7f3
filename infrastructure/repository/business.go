package repository

import (
	"context"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

type BusinessRepository interface {
	// Get devolve nil quando o namespace ainda não tem negócio configurado
	Get(ctx context.Context, namespace string) (*domain.BusinessProfile, error)
	Save(ctx context.Context, namespace string, business *domain.BusinessProfile) error
}

type businessRepository struct {
	store DocumentStore
}

func NewBusinessRepository(store DocumentStore) BusinessRepository {
	return &businessRepository{
		store: store,
	}
}

func (r *businessRepository) Get(ctx context.Context, namespace string) (*domain.BusinessProfile, error) {
	business := &domain.BusinessProfile{}

	found, err := r.store.GetJSON(ctx, namespace, businessDocument, business)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return business, nil
}

func (r *businessRepository) Save(ctx context.Context, namespace string, business *domain.BusinessProfile) error {
	return r.store.SetJSON(ctx, namespace, businessDocument, business)
}
