package domain

type Objective string

const (
	ObjectiveSales     Objective = "OUTCOME_SALES"
	ObjectiveTraffic   Objective = "OUTCOME_TRAFFIC"
	ObjectiveAwareness Objective = "OUTCOME_AWARENESS"
	ObjectiveLeads     Objective = "OUTCOME_LEADS"
)

type TargetingType string

const (
	TargetingBroad       TargetingType = "BROAD"
	TargetingInterests   TargetingType = "INTERESTS"
	TargetingRetargeting TargetingType = "RETARGETING"
)

type TargetingSpec struct {
	Type                    TargetingType `json:"type"`
	Interests               []string      `json:"interests,omitempty"`
	Behaviors               []string      `json:"behaviors,omitempty"`
	AgeMin                  int           `json:"age_min,omitempty"`
	AgeMax                  int           `json:"age_max,omitempty"`
	Genders                 []int         `json:"genders,omitempty"`
	Locales                 []int         `json:"locales,omitempty"`
	Countries               []string      `json:"countries,omitempty"`
	Cities                  []string      `json:"cities,omitempty"`
	CustomAudiences         []string      `json:"custom_audiences,omitempty"`
	ExcludedInterests       []string      `json:"excluded_interests,omitempty"`
	ExcludedCustomAudiences []string      `json:"excluded_custom_audiences,omitempty"`
	LookalikeSourceID       string        `json:"lookalike_source_id,omitempty"`
}

// AdSetBlueprint é um bloco da estrutura da estratégia; o percentual é bruto
type AdSetBlueprint struct {
	Name             string         `json:"name"`
	BudgetPercentage float64        `json:"budget_percentage"`
	FunnelStage      FunnelStage    `json:"funnel_stage,omitempty"`
	Targeting        *TargetingSpec `json:"targeting,omitempty"`
}

type MarketingStrategy struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Category              string           `json:"category"`
	Description           string           `json:"description"`
	RequiredCreativeCount int              `json:"required_creative_count"`
	Objective             Objective        `json:"objective"`
	MinBudget             int64            `json:"min_budget"`
	Platforms             []Platform       `json:"platforms"`
	Structure             []AdSetBlueprint `json:"structure"`
	SegmentationLogic     string           `json:"segmentation_logic,omitempty"`
}

type StrategyAudit struct {
	ID      string `json:"id"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// NormalizedAdSet é o bloco depois da normalização; Percentage soma 100 no conjunto
type NormalizedAdSet struct {
	Name        string
	Percentage  int
	FunnelStage FunnelStage
	Targeting   *TargetingSpec
}

func (s *MarketingStrategy) Supports(platform Platform) bool {
	for _, p := range s.Platforms {
		if p == platform || p == PlatformOmnichannel {
			return true
		}
	}
	return false
}
