package domain

import "time"

type ProgressStatus string

const (
	ProgressInfo  ProgressStatus = "INFO"
	ProgressError ProgressStatus = "ERROR"
)

// Fases reportadas durante o deploy, na ordem em que aparecem
const (
	PhaseStrategy     = "ESTRATEGIA"
	PhaseCampaign     = "CAMPAÑA"
	PhaseHierarchy    = "JERARQUÍA"
	PhaseSegmentation = "SEGMENTACIÓN"
	PhaseValidation   = "VALIDACIÓN"
	PhaseCreative     = "CREATIVE"
	PhaseAd           = "AD"
	PhaseRollback     = "ROLLBACK"
	PhaseSuccess      = "ÉXITO"
	PhaseError        = "ERROR"
)

type ProgressEvent struct {
	Phase    string         `json:"phase"`
	Message  string         `json:"message"`
	Progress int            `json:"progress"`
	Status   ProgressStatus `json:"status"`
}

// ProgressFunc recebe os eventos de progresso de um deploy; pode ser nil
type ProgressFunc func(ProgressEvent)

type DeploymentResult struct {
	Success     bool     `json:"success"`
	CampaignIDs []string `json:"campaign_ids"`
	Error       string   `json:"error,omitempty"`
	FailedAds   []string `json:"failed_ads,omitempty"`
	AdsCreated  int      `json:"ads_created"`
	// Orphaned indica que uma campanha remota ficou sem anúncios e não foi removida
	Orphaned       bool `json:"orphaned,omitempty"`
	RolledBack     bool `json:"rolled_back,omitempty"`
	RollbackFailed bool `json:"rollback_failed,omitempty"`
}

type ValidationResult struct {
	Valid             bool             `json:"valid"`
	Errors            []string         `json:"errors"`
	PublishableAssets []*CreativeAsset `json:"publishable_assets"`
}

type DeploymentStatus string

const (
	DeploymentSucceeded      DeploymentStatus = "SUCCEEDED"
	DeploymentFailed         DeploymentStatus = "FAILED"
	DeploymentRolledBack     DeploymentStatus = "ROLLED_BACK"
	DeploymentRollbackFailed DeploymentStatus = "ROLLBACK_FAILED"
	DeploymentOrphaned       DeploymentStatus = "ORPHANED"
)

// DeploymentRecord é o histórico persistido de cada execução
type DeploymentRecord struct {
	ID           string           `json:"id"`
	Namespace    string           `json:"namespace"`
	BusinessName string           `json:"business_name"`
	AdAccountID  string           `json:"ad_account_id"`
	StrategyID   string           `json:"strategy_id"`
	Status       DeploymentStatus `json:"status"`
	CampaignIDs  []string         `json:"campaign_ids"`
	AdsCreated   int              `json:"ads_created"`
	FailedAds    []string         `json:"failed_ads"`
	Error        string           `json:"error,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type LaunchedCampaign struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StrategyID string    `json:"strategy_id"`
	Platform   Platform  `json:"platform"`
	Status     string    `json:"status"`
	AssetIDs   []string  `json:"asset_ids"`
	FailedAds  []string  `json:"failed_ads,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type LaunchRequest struct {
	AssetIDs     []string         `json:"asset_ids,omitempty"`
	Assets       []*CreativeAsset `json:"assets,omitempty"`
	CampaignName string           `json:"campaign_name,omitempty"`
}

// StatusFromResult classifica o resultado para o histórico
func StatusFromResult(result *DeploymentResult) DeploymentStatus {
	switch {
	case result.Success:
		return DeploymentSucceeded
	case result.RollbackFailed:
		return DeploymentRollbackFailed
	case result.Orphaned:
		return DeploymentOrphaned
	case result.RolledBack:
		return DeploymentRolledBack
	default:
		return DeploymentFailed
	}
}
