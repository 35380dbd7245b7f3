package domain

// Status de todo objeto criado pelo deploy; nenhum fluxo ativa campanhas
const StatusPaused = "PAUSED"

// PlatformAuth identifica a conta de anúncios e o token usados nas chamadas
type PlatformAuth struct {
	AccessToken string
	AdAccountID string
}

type TargetingEntity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type CityTarget struct {
	Key string `json:"key"`
}

type GeoLocations struct {
	Countries []string     `json:"countries,omitempty"`
	Cities    []CityTarget `json:"cities,omitempty"`
}

type FlexibleSpec struct {
	Interests []TargetingEntity `json:"interests,omitempty"`
	Behaviors []TargetingEntity `json:"behaviors,omitempty"`
}

type TargetingExclusions struct {
	Interests       []TargetingEntity `json:"interests,omitempty"`
	CustomAudiences []TargetingEntity `json:"custom_audiences,omitempty"`
}

type LookalikeOrigin struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type LookalikeSpec struct {
	Ratio   float64           `json:"ratio"`
	Country string            `json:"country"`
	Origin  []LookalikeOrigin `json:"origin"`
}

type TargetingAutomation struct {
	AdvantageDetailedTargeting int `json:"advantage_detailed_targeting"`
	AdvantageLookalike         int `json:"advantage_lookalike"`
}

// Targeting é o objeto de segmentação no formato aceito pela Graph API
type Targeting struct {
	GeoLocations          GeoLocations         `json:"geo_locations"`
	AgeMin                int                  `json:"age_min"`
	AgeMax                int                  `json:"age_max"`
	Genders               []int                `json:"genders,omitempty"`
	Locales               []int                `json:"locales,omitempty"`
	DevicePlatforms       []string             `json:"device_platforms"`
	PublisherPlatforms    []string             `json:"publisher_platforms"`
	FlexibleSpec          []FlexibleSpec       `json:"flexible_spec,omitempty"`
	Exclusions            *TargetingExclusions `json:"exclusions,omitempty"`
	CustomAudiences       []TargetingEntity    `json:"custom_audiences,omitempty"`
	LookalikeSpec         *LookalikeSpec       `json:"lookalike_spec,omitempty"`
	TargetingOptimization string               `json:"targeting_optimization,omitempty"`
	AdvantagePlusAudience *int                 `json:"advantage_plus_audience,omitempty"`
	TargetingAutomation   *TargetingAutomation `json:"targeting_automation,omitempty"`
}

type CampaignRequest struct {
	Name                string
	Objective           Objective
	Status              string
	SpecialAdCategories []string
}

type PromotedObject struct {
	PixelID         string `json:"pixel_id"`
	CustomEventType string `json:"custom_event_type"`
}

type AdSetRequest struct {
	Name             string
	CampaignID       string
	DailyBudget      int64
	BillingEvent     string
	OptimizationGoal string
	BidStrategy      string
	Targeting        Targeting
	PromotedObject   *PromotedObject
	Status           string
}

type CallToActionValue struct {
	Link string `json:"link,omitempty"`
}

type CallToAction struct {
	Type  string            `json:"type"`
	Value CallToActionValue `json:"value"`
}

type LinkData struct {
	Link         string       `json:"link"`
	Message      string       `json:"message"`
	Name         string       `json:"name,omitempty"`
	Description  string       `json:"description,omitempty"`
	Picture      string       `json:"picture,omitempty"`
	CallToAction CallToAction `json:"call_to_action"`
}

type VideoData struct {
	VideoID      string       `json:"video_id"`
	Message      string       `json:"message"`
	Title        string       `json:"title,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	CallToAction CallToAction `json:"call_to_action"`
}

type ObjectStorySpec struct {
	PageID           string     `json:"page_id"`
	InstagramActorID string     `json:"instagram_actor_id,omitempty"`
	LinkData         *LinkData  `json:"link_data,omitempty"`
	VideoData        *VideoData `json:"video_data,omitempty"`
}

type AdCreativeRequest struct {
	Name            string
	ObjectStorySpec ObjectStorySpec
}

type AdRequest struct {
	Name       string
	AdSetID    string
	CreativeID string
	Status     string
}

type AdAccountSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AmountSpent string `json:"amount_spent,omitempty"`
}

type PageSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PictureURL string `json:"picture_url,omitempty"`
}

// MetaAssets são as contas e páginas que o token enxerga, usadas na configuração do negócio
type MetaAssets struct {
	AdAccounts []AdAccountSummary `json:"ad_accounts"`
	Pages      []PageSummary      `json:"pages"`
}
