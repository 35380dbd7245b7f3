package workspace

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/utils"
)

const (
	defaultCopyCount = 3
	maxCopyCount     = 10
)

type Manager interface {
	GetBusiness(ctx context.Context, namespace string) (*domain.BusinessProfile, error)
	SaveBusiness(ctx context.Context, namespace string, business *domain.BusinessProfile) (*domain.BusinessProfile, error)
	ListAssets(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error)
	SaveAsset(ctx context.Context, namespace string, asset *domain.CreativeAsset) (*domain.CreativeAsset, bool, error)
	DeleteAsset(ctx context.Context, namespace string, id string) error
	ListCampaigns(ctx context.Context, namespace string) ([]*domain.LaunchedCampaign, error)
	GenerateCopy(ctx context.Context, namespace string, count int, save bool) ([]*domain.CreativeAsset, error)
}

// Service guarda o negócio, a biblioteca de ativos e as campanhas lançadas de cada licença
type Service struct {
	business  BusinessStore
	assets    AssetLibrary
	campaigns CampaignLog
	catalog   StrategyResolver
	generator CopyGenerator
}

// NewService cria o serviço do workspace; generator pode ser nil quando não há chave do Gemini
func NewService(
	business BusinessStore,
	assets AssetLibrary,
	campaigns CampaignLog,
	catalog StrategyResolver,
	generator CopyGenerator,
) *Service {
	return &Service{
		business:  business,
		assets:    assets,
		campaigns: campaigns,
		catalog:   catalog,
		generator: generator,
	}
}

// GetBusiness devolve nil quando o namespace ainda não configurou o negócio
func (s *Service) GetBusiness(ctx context.Context, namespace string) (*domain.BusinessProfile, error) {
	business, err := s.business.Get(ctx, namespace)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao carregar negócio")
		return nil, NewWorkspaceError(ErrLoadBusiness, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return business, nil
}

// SaveBusiness grava o perfil do negócio. Um token vazio na atualização mantém o token já salvo.
func (s *Service) SaveBusiness(ctx context.Context, namespace string, business *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if business == nil {
		return nil, NewWorkspaceError(ErrBusinessRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if business.Budget < 0 {
		return nil, NewWorkspaceError(ErrInvalidBusiness, apiErrors.ErrInvalidRequest, "budget must not be negative")
	}

	business.Meta.AccessToken = strings.TrimSpace(business.Meta.AccessToken)
	if business.Meta.AccessToken == "" {
		current, err := s.GetBusiness(ctx, namespace)
		if err != nil {
			return nil, err
		}
		if current != nil {
			business.Meta.AccessToken = current.Meta.AccessToken
		}
	}

	if err := s.business.Save(ctx, namespace, business); err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao salvar negócio")
		return nil, NewWorkspaceError(ErrSaveBusiness, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"namespace":     namespace,
		"business":      business.Name,
		"ad_account_id": business.Meta.NormalizedAdAccountID(),
	}).Info("workspace: negócio atualizado")

	return business, nil
}

func (s *Service) ListAssets(ctx context.Context, namespace string) ([]*domain.CreativeAsset, error) {
	assets, err := s.assets.List(ctx, namespace)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao listar ativos")
		return nil, NewWorkspaceError(ErrLoadAssets, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return assets, nil
}

// SaveAsset adiciona o ativo na biblioteca. created é false quando o id já existia (o ativo é substituído)
// ou quando a URL já estava salva.
func (s *Service) SaveAsset(ctx context.Context, namespace string, asset *domain.CreativeAsset) (*domain.CreativeAsset, bool, error) {
	if err := validateAsset(asset); err != nil {
		return nil, false, err
	}

	if asset.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, false, NewWorkspaceError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		asset.ID = id
	}
	if asset.Platform == "" {
		asset.Platform = domain.PlatformMeta
	}
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now()
	}

	created, err := s.assets.Save(ctx, namespace, asset)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao salvar ativo")
		return nil, false, NewWorkspaceError(ErrSaveAsset, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return asset, created, nil
}

func (s *Service) DeleteAsset(ctx context.Context, namespace string, id string) error {
	deleted, err := s.assets.Delete(ctx, namespace, id)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"namespace": namespace, "asset_id": id}).Error("workspace: erro ao remover ativo")
		return NewWorkspaceError(ErrDeleteAsset, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !deleted {
		return NewWorkspaceError(ErrAssetNotFound, apiErrors.ErrNotFound, id)
	}

	return nil
}

func (s *Service) ListCampaigns(ctx context.Context, namespace string) ([]*domain.LaunchedCampaign, error) {
	campaigns, err := s.campaigns.List(ctx, namespace)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao listar campanhas")
		return nil, NewWorkspaceError(ErrLoadCampaigns, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return campaigns, nil
}

func (s *Service) SaveLaunchedCampaign(ctx context.Context, namespace string, campaign *domain.LaunchedCampaign) error {
	if err := s.campaigns.Save(ctx, namespace, campaign); err != nil {
		return NewWorkspaceError(ErrSaveCampaign, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// GenerateCopy pede textos ao gerador com base no negócio e na estratégia do namespace.
// Com save os textos entram na biblioteca; a mídia é anexada depois pelo anunciante.
func (s *Service) GenerateCopy(ctx context.Context, namespace string, count int, save bool) ([]*domain.CreativeAsset, error) {
	if s.generator == nil {
		return nil, NewWorkspaceError(ErrCopyUnavailable, apiErrors.ErrNotConfigured, "")
	}

	business, err := s.GetBusiness(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, NewWorkspaceError(ErrBusinessNotConfigured, apiErrors.ErrMissingRequiredData, namespace)
	}

	switch {
	case count <= 0:
		count = defaultCopyCount
	case count > maxCopyCount:
		count = maxCopyCount
	}

	strategy := s.catalog.Resolve(business.StrategyID)

	copies, err := s.generator.GenerateCopy(ctx, business, strategy, count)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao gerar textos")
		return nil, NewWorkspaceError(ErrGenerateCopy, apiErrors.ErrExternalService, err.Error())
	}

	now := time.Now()
	for _, asset := range copies {
		asset.Kind = domain.MediaText
		asset.CreatedAt = now
		if asset.Platform == "" {
			asset.Platform = domain.PlatformMeta
		}
		if asset.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, NewWorkspaceError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
			}
			asset.ID = id
		}

		if !save {
			continue
		}
		if _, err := s.assets.Save(ctx, namespace, asset); err != nil {
			logrus.WithError(err).WithField("namespace", namespace).Error("workspace: erro ao salvar texto gerado")
			return nil, NewWorkspaceError(ErrSaveAsset, apiErrors.ErrDatabaseOperation, err.Error())
		}
	}

	return copies, nil
}

func validateAsset(asset *domain.CreativeAsset) error {
	if asset == nil {
		return NewWorkspaceError(ErrInvalidAsset, apiErrors.ErrMissingRequiredData, "asset is required")
	}

	switch asset.Kind {
	case domain.MediaImage, domain.MediaVideo:
		if !asset.HasMediaURL() {
			return NewWorkspaceError(ErrInvalidAsset, apiErrors.ErrMissingRequiredData, "url is required for media assets")
		}
	case domain.MediaText:
		if !asset.HasBody() {
			return NewWorkspaceError(ErrInvalidAsset, apiErrors.ErrMissingRequiredData, "body is required for text assets")
		}
	default:
		return NewWorkspaceError(ErrInvalidAsset, apiErrors.ErrInvalidFormat, "unknown kind "+string(asset.Kind))
	}

	return nil
}
