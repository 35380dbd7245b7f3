package deploying

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/utils"
)

const (
	lockKeyPrefix      = "deploy:"
	defaultRecordLimit = 50
)

type Deployer interface {
	Launch(ctx context.Context, namespace string, req *domain.LaunchRequest, onProgress domain.ProgressFunc) (*domain.DeploymentResult, error)
	Check(ctx context.Context, namespace string, req *domain.LaunchRequest) (*domain.ValidationResult, error)
	ListDeployments(ctx context.Context, namespace string, limit int) ([]*domain.DeploymentRecord, error)
}

type Service struct {
	orchestrator *Orchestrator
	workspace    WorkspaceStore
	catalog      StrategyCatalog
	locker       Locker
	records      RecordRepository
	cfg          config.Deployment
}

func NewService(
	orchestrator *Orchestrator,
	workspace WorkspaceStore,
	catalog StrategyCatalog,
	locker Locker,
	records RecordRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		orchestrator: orchestrator,
		workspace:    workspace,
		catalog:      catalog,
		locker:       locker,
		records:      records,
		cfg:          cfg.Deployment,
	}
}

// Launch carrega o negócio do namespace, garante um único deploy por conta de anúncios
// e persiste o histórico da execução.
func (s *Service) Launch(
	ctx context.Context,
	namespace string,
	req *domain.LaunchRequest,
	onProgress domain.ProgressFunc,
) (*domain.DeploymentResult, error) {
	if req == nil {
		req = &domain.LaunchRequest{}
	}

	business, assets, err := s.load(ctx, namespace, req)
	if err != nil {
		return nil, err
	}

	strategy := s.catalog.Resolve(business.StrategyID)

	accountID := business.Meta.NormalizedAdAccountID()
	if accountID != "" {
		release, acquired, err := s.locker.Acquire(ctx, lockKeyPrefix+accountID, s.cfg.LockTTL())
		if err != nil {
			logrus.WithError(err).WithField("ad_account_id", accountID).Error("deploy: erro ao obter lock de deploy")
			return nil, NewDeploymentError(ErrLockUnavailable, apiErrors.ErrCommunication, err.Error())
		}
		if !acquired {
			logrus.WithField("ad_account_id", accountID).Warn("deploy: já existe um deploy em andamento para a conta")
			return nil, NewDeploymentError(ErrDeploymentInFlight, apiErrors.ErrDeploymentInFlight, accountID)
		}
		defer release()
	}

	runCtx := ctx
	if timeout := s.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	options := make([]DeployOption, 0, 1)
	if req.CampaignName != "" {
		options = append(options, WithCampaignBaseName(req.CampaignName))
	}

	result := s.orchestrator.Deploy(runCtx, business, assets, strategy, onProgress, options...)

	s.persist(context.WithoutCancel(ctx), namespace, business, strategy, assets, result)

	return result, nil
}

// Check roda apenas a validação, sem chamadas remotas
func (s *Service) Check(ctx context.Context, namespace string, req *domain.LaunchRequest) (*domain.ValidationResult, error) {
	if req == nil {
		req = &domain.LaunchRequest{}
	}

	business, assets, err := s.load(ctx, namespace, req)
	if err != nil {
		return nil, err
	}

	return Validate(business, assets), nil
}

func (s *Service) ListDeployments(ctx context.Context, namespace string, limit int) ([]*domain.DeploymentRecord, error) {
	if limit <= 0 {
		limit = defaultRecordLimit
	}

	records, err := s.records.ListByNamespace(ctx, namespace, limit)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("deploy: erro ao listar histórico")
		return nil, NewDeploymentError(ErrListDeployments, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return records, nil
}

func (s *Service) load(ctx context.Context, namespace string, req *domain.LaunchRequest) (*domain.BusinessProfile, []*domain.CreativeAsset, error) {
	business, err := s.workspace.GetBusiness(ctx, namespace)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("deploy: erro ao carregar negócio")
		return nil, nil, NewDeploymentError(ErrLoadBusiness, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if business == nil {
		return nil, nil, NewDeploymentError(ErrBusinessNotConfigured, apiErrors.ErrMissingRequiredData, namespace)
	}

	if len(req.Assets) > 0 {
		return business, req.Assets, nil
	}

	library, err := s.workspace.ListAssets(ctx, namespace)
	if err != nil {
		logrus.WithError(err).WithField("namespace", namespace).Error("deploy: erro ao carregar ativos")
		return nil, nil, NewDeploymentError(ErrLoadAssets, apiErrors.ErrDatabaseOperation, err.Error())
	}

	assets, missing := selectAssets(library, req.AssetIDs)
	if len(missing) > 0 {
		return nil, nil, NewDeploymentError(ErrAssetsNotFound, apiErrors.ErrInvalidRequest, strings.Join(missing, ","))
	}

	return business, assets, nil
}

// selectAssets devolve os ativos pedidos ou, sem ids, os ativos ativos do Meta
func selectAssets(library []*domain.CreativeAsset, ids []string) ([]*domain.CreativeAsset, []string) {
	if len(ids) == 0 {
		selected := make([]*domain.CreativeAsset, 0, len(library))
		for _, asset := range library {
			if asset.Active && (asset.Platform == "" || asset.Platform == domain.PlatformMeta) {
				selected = append(selected, asset)
			}
		}
		return selected, nil
	}

	// a biblioteca vem do mais novo para o mais antigo; vale a primeira ocorrência
	byID := make(map[string]*domain.CreativeAsset, len(library))
	for _, asset := range library {
		if _, seen := byID[asset.ID]; !seen {
			byID[asset.ID] = asset
		}
	}

	selected := make([]*domain.CreativeAsset, 0, len(ids))
	missing := make([]string, 0)
	for _, id := range ids {
		asset, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		selected = append(selected, asset)
	}

	return selected, missing
}

// persist grava o histórico e a campanha lançada; falhas aqui não alteram o resultado do deploy
func (s *Service) persist(
	ctx context.Context,
	namespace string,
	business *domain.BusinessProfile,
	strategy *domain.MarketingStrategy,
	assets []*domain.CreativeAsset,
	result *domain.DeploymentResult,
) {
	now := time.Now()
	strategyID := ""
	strategyName := ""
	if strategy != nil {
		strategyID = strategy.ID
		strategyName = strategy.Name
	}

	logger := logrus.WithFields(logrus.Fields{
		"namespace":     namespace,
		"ad_account_id": business.Meta.NormalizedAdAccountID(),
	})

	recordID, err := utils.GeneratePrefixedID("dep")
	if err != nil {
		logger.WithError(err).Error("deploy: erro ao gerar id do histórico")
	} else {
		record := &domain.DeploymentRecord{
			ID:           recordID,
			Namespace:    namespace,
			BusinessName: business.Name,
			AdAccountID:  business.Meta.NormalizedAdAccountID(),
			StrategyID:   strategyID,
			Status:       domain.StatusFromResult(result),
			CampaignIDs:  result.CampaignIDs,
			AdsCreated:   result.AdsCreated,
			FailedAds:    result.FailedAds,
			Error:        result.Error,
			CreatedAt:    now,
		}
		if err := s.records.Save(ctx, record); err != nil {
			logger.WithError(err).Error("deploy: erro ao salvar histórico do deploy")
		}
	}

	if !result.Success || len(result.CampaignIDs) == 0 {
		return
	}

	assetIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.IsPublishable() {
			assetIDs = append(assetIDs, asset.ID)
		}
	}

	launched := &domain.LaunchedCampaign{
		ID:         result.CampaignIDs[0],
		Name:       strategyName,
		StrategyID: strategyID,
		Platform:   domain.PlatformMeta,
		Status:     domain.StatusPaused,
		AssetIDs:   assetIDs,
		FailedAds:  result.FailedAds,
		CreatedAt:  now,
	}
	if err := s.workspace.SaveLaunchedCampaign(ctx, namespace, launched); err != nil {
		logger.WithError(err).Error("deploy: erro ao salvar campanha lançada")
	}
}
