package deploying

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
)

const (
	billingEventImpressions = "IMPRESSIONS"
	bidStrategyLowestCost   = "LOWEST_COST_WITHOUT_CAP"
	goalOffsiteConversions  = "OFFSITE_CONVERSIONS"
	goalLinkClicks          = "LINK_CLICKS"
	eventPurchase           = "PURCHASE"
	defaultCTA              = "SHOP_NOW"
	defaultDescription      = "Inyección Phoenix v21"
	defaultCampaignPrefix   = "[PHOENIX]"
	defaultMinAdSetBudget   = 100

	rollbackTimeout = 30 * time.Second
)

type Options struct {
	CampaignPrefix   string
	MinAdSetBudget   int64
	DefaultCountries []string
	// FallbackToken é usado quando o negócio não tem token próprio
	FallbackToken string
}

type deployOptions struct {
	campaignBaseName string
}

type DeployOption func(*deployOptions)

// WithCampaignBaseName troca o prefixo do nome da campanha nesta execução
func WithCampaignBaseName(name string) DeployOption {
	return func(o *deployOptions) {
		o.campaignBaseName = strings.TrimSpace(name)
	}
}

type Orchestrator struct {
	platform AdPlatform
	catalog  StrategyCatalog
	opts     Options
}

func NewOrchestrator(platform AdPlatform, catalog StrategyCatalog, opts Options) *Orchestrator {
	if opts.CampaignPrefix == "" {
		opts.CampaignPrefix = defaultCampaignPrefix
	}
	if opts.MinAdSetBudget <= 0 {
		opts.MinAdSetBudget = defaultMinAdSetBudget
	}

	return &Orchestrator{
		platform: platform,
		catalog:  catalog,
		opts:     opts,
	}
}

// Deploy cria Campanha -> AdSets -> Creatives -> Ads em sequência, sempre PAUSED.
// Nunca devolve erro: qualquer falha vira um DeploymentResult com Success=false.
func (o *Orchestrator) Deploy(
	ctx context.Context,
	business *domain.BusinessProfile,
	assets []*domain.CreativeAsset,
	strategy *domain.MarketingStrategy,
	onProgress domain.ProgressFunc,
	options ...DeployOption,
) (result *domain.DeploymentResult) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("deploy: panic recuperado durante o deploy")
			result = &domain.DeploymentResult{Error: fmt.Sprintf("%s%v", msgUnexpected, r)}
		}
		metrics.Deployments.WithLabelValues(strings.ToLower(string(domain.StatusFromResult(result)))).Inc()
		metrics.DeploymentDuration.Observe(time.Since(started).Seconds())
	}()

	deployOpts := deployOptions{}
	for _, opt := range options {
		opt(&deployOpts)
	}

	if business == nil {
		return &domain.DeploymentResult{Error: msgIncompleteConfig}
	}

	auth, ok := o.credentials(business)
	if !ok {
		return &domain.DeploymentResult{Error: msgIncompleteConfig}
	}

	validation := Validate(business, assets)
	if !validation.Valid {
		return &domain.DeploymentResult{Error: msgValidationFailed + strings.Join(validation.Errors, " | ")}
	}

	emit := newEmitter(onProgress)

	strategy, ok = o.resolveStrategy(strategy, emit)
	if !ok {
		return &domain.DeploymentResult{Error: msgNoStrategy}
	}

	prefix := o.opts.CampaignPrefix
	if deployOpts.campaignBaseName != "" {
		prefix = deployOpts.campaignBaseName
	}

	r := &run{
		ctx:          ctx,
		platform:     o.platform,
		opts:         o.opts,
		auth:         auth,
		business:     business,
		strategy:     strategy,
		publishable:  validation.PublishableAssets,
		campaignName: fmt.Sprintf("%s | %s", prefix, strategy.Name),
		persona: PersonaHints{
			Age:       ExtractAgeRange(business.Demographics()),
			Interests: business.PersonaInterests(),
		},
		emit: emit,
		log: logrus.WithFields(logrus.Fields{
			"ad_account_id": auth.AdAccountID,
			"strategy_id":   strategy.ID,
		}),
	}

	return r.execute()
}

func (o *Orchestrator) credentials(business *domain.BusinessProfile) (domain.PlatformAuth, bool) {
	token := strings.TrimSpace(business.Meta.AccessToken)
	if token == "" {
		token = o.opts.FallbackToken
	}
	accountID := business.Meta.NormalizedAdAccountID()

	if token == "" || accountID == "" || strings.TrimSpace(business.Meta.PageID) == "" {
		return domain.PlatformAuth{}, false
	}

	return domain.PlatformAuth{AccessToken: token, AdAccountID: accountID}, true
}

func (o *Orchestrator) resolveStrategy(strategy *domain.MarketingStrategy, emit *emitter) (*domain.MarketingStrategy, bool) {
	if strategy != nil && strategy.Supports(domain.PlatformMeta) {
		return strategy, true
	}

	if o.catalog == nil {
		return nil, false
	}

	substitute, ok := o.catalog.FirstCompatible(domain.PlatformMeta)
	if !ok {
		return nil, false
	}

	requested := "ninguna"
	if strategy != nil {
		requested = strategy.Name
	}
	emit.info(domain.PhaseStrategy, fmt.Sprintf("Estrategia %s no es compatible con Meta. Usando: %s", requested, substitute.Name), 0)

	return substitute, true
}

// run guarda o estado de uma única execução; nada aqui é compartilhado entre deploys
type run struct {
	ctx          context.Context
	platform     AdPlatform
	opts         Options
	auth         domain.PlatformAuth
	business     *domain.BusinessProfile
	strategy     *domain.MarketingStrategy
	publishable  []*domain.CreativeAsset
	campaignName string
	persona      PersonaHints
	emit         *emitter
	log          *logrus.Entry

	campaignID string
	adsCreated int
	failedAds  []string
}

func (r *run) execute() *domain.DeploymentResult {
	r.emit.info(domain.PhaseStrategy, "Ejecutando: "+r.strategy.Name, 5)

	if err := r.ctx.Err(); err != nil {
		return r.cancelled(err)
	}

	r.emit.info(domain.PhaseCampaign, fmt.Sprintf("Creando campaña %s...", r.campaignName), 10)
	campaignID, err := r.platform.CreateCampaign(r.ctx, r.auth, &domain.CampaignRequest{
		Name:      r.campaignName,
		Objective: r.strategy.Objective,
		Status:    domain.StatusPaused,
	})
	if err != nil || campaignID == "" {
		message := msgCampaignWithoutID
		if err != nil {
			message = err.Error()
		}
		r.log.WithError(err).Error("deploy: falha ao criar campanha")
		metrics.AdFailures.WithLabelValues("campaign").Inc()
		return r.fail(message)
	}

	r.campaignID = campaignID
	r.log = r.log.WithField("campaign_id", campaignID)
	r.emit.info(domain.PhaseHierarchy, fmt.Sprintf("Campaña %s activa. Desplegando AdSets...", campaignID), 20)

	adSets := NormalizeStructure(r.strategy.Structure)
	for i, adSet := range adSets {
		if err := r.ctx.Err(); err != nil {
			return r.cancelled(err)
		}

		progress := segmentProgress(i)
		r.emit.info(domain.PhaseSegmentation, fmt.Sprintf("Inyectando reglas en: %s...", adSet.Name), progress)

		adSetID, err := r.createAdSet(adSet)
		if err != nil {
			return r.orphaned(adSet, err)
		}

		for n, asset := range r.publishable {
			if err := r.ctx.Err(); err != nil {
				return r.cancelled(err)
			}
			r.deployAsset(adSet, adSetID, n+1, asset, progress)
		}
	}

	if r.adsCreated == 0 {
		return r.rollback()
	}

	r.emit.info(domain.PhaseSuccess, "Estructura multivariante desplegada.", 100)
	r.log.WithFields(logrus.Fields{
		"ads_created": r.adsCreated,
		"failed_ads":  len(r.failedAds),
	}).Info("deploy: estrutura publicada com sucesso")

	return &domain.DeploymentResult{
		Success:     true,
		CampaignIDs: []string{r.campaignID},
		FailedAds:   r.failedAds,
		AdsCreated:  r.adsCreated,
	}
}

func (r *run) createAdSet(adSet domain.NormalizedAdSet) (string, error) {
	req := &domain.AdSetRequest{
		Name:             adSet.Name,
		CampaignID:       r.campaignID,
		DailyBudget:      DailyBudget(r.business.Budget, adSet.Percentage, r.opts.MinAdSetBudget),
		BillingEvent:     billingEventImpressions,
		OptimizationGoal: optimizationGoal(r.strategy.Objective),
		BidStrategy:      bidStrategyLowestCost,
		Targeting: BuildTargeting(adSet.Targeting, r.persona, GeoDefaults{
			BusinessCountry: r.business.Country,
			Countries:       r.opts.DefaultCountries,
		}),
		Status: domain.StatusPaused,
	}

	if r.strategy.Objective == domain.ObjectiveSales && r.business.Meta.PixelID != "" {
		req.PromotedObject = &domain.PromotedObject{
			PixelID:         r.business.Meta.PixelID,
			CustomEventType: eventPurchase,
		}
	}

	adSetID, err := r.platform.CreateAdSet(r.ctx, r.auth, req)
	if err != nil {
		return "", err
	}
	if adSetID == "" {
		return "", fmt.Errorf("%s%s", msgAdSetWithoutID, adSet.Name)
	}

	r.log.WithFields(logrus.Fields{
		"adset_id":     adSetID,
		"adset_name":   adSet.Name,
		"daily_budget": req.DailyBudget,
	}).Debug("deploy: adset criado")

	return adSetID, nil
}

func (r *run) deployAsset(adSet domain.NormalizedAdSet, adSetID string, n int, asset *domain.CreativeAsset, progress int) {
	label := asset.Label()

	creative, ok := r.buildCreative(n, asset)
	if !ok {
		r.recordFailure(adSet, asset, reasonVideoNotUploaded)
		metrics.AdFailures.WithLabelValues("video").Inc()
		r.emit.fail(domain.PhaseValidation, fmt.Sprintf("Asset %s: falta videoId para usar video en Meta.", label), progress)
		return
	}

	r.emit.info(domain.PhaseCreative, fmt.Sprintf("Creando AdCreative para %s...", label), progress)
	creativeID, err := r.platform.CreateAdCreative(r.ctx, r.auth, creative)
	if err != nil || creativeID == "" {
		r.recordFailure(adSet, asset, "creative error: "+failureReason(err))
		metrics.AdFailures.WithLabelValues("creative").Inc()
		r.log.WithError(err).WithField("asset_id", asset.ID).Warn("deploy: falha ao criar creative")
		r.emit.fail(domain.PhaseCreative, fmt.Sprintf("No se pudo crear AdCreative para %s.", label), progress)
		return
	}

	r.emit.info(domain.PhaseAd, fmt.Sprintf("Creando Ad para %s...", label), progress)
	adID, err := r.platform.CreateAd(r.ctx, r.auth, &domain.AdRequest{
		Name:       fmt.Sprintf("AD_%d_%s", n, adSet.Name),
		AdSetID:    adSetID,
		CreativeID: creativeID,
		Status:     domain.StatusPaused,
	})
	if err != nil || adID == "" {
		r.recordFailure(adSet, asset, "ad error: "+failureReason(err))
		metrics.AdFailures.WithLabelValues("ad").Inc()
		r.log.WithError(err).WithField("asset_id", asset.ID).Warn("deploy: falha ao criar ad")
		r.emit.fail(domain.PhaseAd, fmt.Sprintf("No se pudo crear Ad para %s.", label), progress)
		return
	}

	r.adsCreated++
	metrics.AdsCreated.Inc()
}

// buildCreative devolve false quando um vídeo ainda não foi enviado ao Meta
func (r *run) buildCreative(n int, asset *domain.CreativeAsset) (*domain.AdCreativeRequest, bool) {
	landing := r.business.LandingPageURL
	cta := domain.CallToAction{
		Type:  defaultCTA,
		Value: domain.CallToActionValue{Link: landing},
	}
	if asset.Metadata.CTA != "" {
		cta.Type = asset.Metadata.CTA
	}

	spec := domain.ObjectStorySpec{
		PageID:           r.business.Meta.PageID,
		InstagramActorID: r.business.Meta.InstagramID,
	}

	switch asset.Kind {
	case domain.MediaVideo:
		if !asset.HasUploadedVideo() {
			return nil, false
		}
		spec.VideoData = &domain.VideoData{
			VideoID:      asset.Metadata.VideoID,
			Message:      asset.Body,
			Title:        asset.Title,
			CallToAction: cta,
		}
	default:
		description := asset.Metadata.Description
		if description == "" {
			description = defaultDescription
		}
		spec.LinkData = &domain.LinkData{
			Link:         landing,
			Message:      asset.Body,
			Name:         asset.Title,
			Description:  description,
			Picture:      asset.URL,
			CallToAction: cta,
		}
	}

	return &domain.AdCreativeRequest{
		Name:            fmt.Sprintf("ADS_IA_%d", n),
		ObjectStorySpec: spec,
	}, true
}

func (r *run) recordFailure(adSet domain.NormalizedAdSet, asset *domain.CreativeAsset, reason string) {
	r.failedAds = append(r.failedAds, fmt.Sprintf("%s :: %s (%s)", adSet.Name, asset.Label(), reason))
}

// orphaned encerra o deploy quando um AdSet falha; a campanha fica no Meta sem anúncios
func (r *run) orphaned(adSet domain.NormalizedAdSet, err error) *domain.DeploymentResult {
	if ctxErr := r.ctx.Err(); ctxErr != nil {
		return r.cancelled(ctxErr)
	}

	metrics.AdFailures.WithLabelValues("adset").Inc()
	r.log.WithError(err).WithField("adset_name", adSet.Name).
		Error("deploy: falha ao criar adset, campanha mantida sem rollback")

	result := r.fail(err.Error())
	result.CampaignIDs = []string{r.campaignID}
	result.AdsCreated = r.adsCreated
	result.Orphaned = r.adsCreated == 0
	return result
}

func (r *run) rollback() *domain.DeploymentResult {
	r.emit.fail(domain.PhaseRollback, "No se creó ningún Ad válido. Eliminando campaña vacía...", 95)

	result := &domain.DeploymentResult{
		Error:     msgAllAdsBlocked,
		FailedAds: r.failedAds,
	}

	if err := r.deleteCampaign(); err != nil {
		result.RollbackFailed = true
		result.CampaignIDs = []string{r.campaignID}
		return result
	}

	result.RolledBack = true
	return result
}

// deleteCampaign usa um contexto próprio para que o rollback aconteça mesmo após cancelamento
func (r *run) deleteCampaign() error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.ctx), rollbackTimeout)
	defer cancel()

	if err := r.platform.DeleteCampaign(ctx, r.auth, r.campaignID); err != nil {
		metrics.Rollbacks.WithLabelValues("failed").Inc()
		r.log.WithError(err).Error("deploy: falha ao remover campanha vazia, campanha órfã no Meta")
		return err
	}

	metrics.Rollbacks.WithLabelValues("deleted").Inc()
	r.log.Info("deploy: campanha vazia removida")
	return nil
}

func (r *run) cancelled(cause error) *domain.DeploymentResult {
	message := msgCancelled + cause.Error()
	r.emit.fail(domain.PhaseError, message, 0)
	r.log.WithError(cause).Warn("deploy: execução cancelada")

	result := &domain.DeploymentResult{
		Error:      message,
		FailedAds:  r.failedAds,
		AdsCreated: r.adsCreated,
	}
	if r.campaignID == "" {
		return result
	}

	if r.adsCreated > 0 {
		result.CampaignIDs = []string{r.campaignID}
		return result
	}

	if err := r.deleteCampaign(); err != nil {
		result.RollbackFailed = true
		result.CampaignIDs = []string{r.campaignID}
		return result
	}
	result.RolledBack = true
	return result
}

func (r *run) fail(message string) *domain.DeploymentResult {
	r.emit.fail(domain.PhaseError, message, 0)
	return &domain.DeploymentResult{
		Error:     message,
		FailedAds: r.failedAds,
	}
}

func optimizationGoal(objective domain.Objective) string {
	if objective == domain.ObjectiveSales {
		return goalOffsiteConversions
	}
	return goalLinkClicks
}

// segmentProgress espalha os AdSets entre 30 e 90
func segmentProgress(index int) int {
	progress := 30 + index*10
	if progress > 90 {
		return 90
	}
	return progress
}

func failureReason(err error) string {
	if err == nil {
		return msgMissingID
	}
	return err.Error()
}
