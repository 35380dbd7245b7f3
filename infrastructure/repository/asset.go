package repository

import (
	"context"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

// MaxLibraryAssets limita a biblioteca de cada namespace; os mais antigos saem primeiro
const MaxLibraryAssets = 100

type AssetRepository interface {
	List(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error)
	// Save coloca o ativo no topo da biblioteca. Um id já salvo é substituído no lugar e devolve false;
	// um id novo com URL já salva também devolve false.
	Save(ctx context.Context, namespace string, asset *domain.CreativeAsset) (bool, error)
	// Delete devolve false quando o id não está na biblioteca
	Delete(ctx context.Context, namespace string, id string) (bool, error)
}

type assetRepository struct {
	store DocumentStore
}

func NewAssetRepository(store DocumentStore) AssetRepository {
	return &assetRepository{
		store: store,
	}
}

func (r *assetRepository) List(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error) {
	assets := make([]*domain.CreativeAsset, 0)

	if _, err := r.store.GetJSON(ctx, namespace, assetsDocument, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) Save(ctx context.Context, namespace string, asset *domain.CreativeAsset) (bool, error) {
	assets, err := r.List(ctx, namespace)
	if err != nil {
		return false, err
	}

	if i := indexOfID(assets, asset.ID); i >= 0 {
		assets[i] = asset
		if err := r.store.SetJSON(ctx, namespace, assetsDocument, assets); err != nil {
			return false, err
		}
		return false, nil
	}

	for _, existing := range assets {
		if sameAsset(existing, asset) {
			return false, nil
		}
	}

	assets = append([]*domain.CreativeAsset{asset}, assets...)
	if len(assets) > MaxLibraryAssets {
		assets = assets[:MaxLibraryAssets]
	}

	if err := r.store.SetJSON(ctx, namespace, assetsDocument, assets); err != nil {
		return false, err
	}

	return true, nil
}

func (r *assetRepository) Delete(ctx context.Context, namespace string, id string) (bool, error) {
	assets, err := r.List(ctx, namespace)
	if err != nil {
		return false, err
	}

	kept := make([]*domain.CreativeAsset, 0, len(assets))
	for _, asset := range assets {
		if asset.ID != id {
			kept = append(kept, asset)
		}
	}

	if len(kept) == len(assets) {
		return false, nil
	}

	if err := r.store.SetJSON(ctx, namespace, assetsDocument, kept); err != nil {
		return false, err
	}

	return true, nil
}

func indexOfID(assets []*domain.CreativeAsset, id string) int {
	if id == "" {
		return -1
	}
	for i, asset := range assets {
		if asset.ID == id {
			return i
		}
	}
	return -1
}

// sameAsset compara pela URL de mídia
func sameAsset(a, b *domain.CreativeAsset) bool {
	if a.HasMediaURL() || b.HasMediaURL() {
		return a.URL == b.URL
	}
	return false
}
