package domain

import "strings"

type Platform string

const (
	PlatformMeta        Platform = "META"
	PlatformGoogle      Platform = "GOOGLE"
	PlatformTikTok      Platform = "TIKTOK"
	PlatformOmnichannel Platform = "OMNICHANNEL"
)

// MetaConfig guarda as credenciais do negócio na Graph API
type MetaConfig struct {
	AccessToken string `json:"access_token"`
	AdAccountID string `json:"ad_account_id"`
	PageID      string `json:"page_id"`
	PixelID     string `json:"pixel_id,omitempty"`
	InstagramID string `json:"instagram_id,omitempty"`
}

type Persona struct {
	Demographics string   `json:"demographics"`
	Interests    []string `json:"interests"`
	PainPoints   []string `json:"pain_points,omitempty"`
}

type BusinessProfile struct {
	Name           string     `json:"name"`
	Niche          string     `json:"niche"`
	TargetAudience string     `json:"target_audience"`
	LandingPageURL string     `json:"landing_page_url"`
	Country        string     `json:"country,omitempty"`
	Meta           MetaConfig `json:"meta"`
	// Budget é o teto diário em unidades mínimas da moeda (centavos)
	Budget     int64    `json:"budget"`
	StrategyID string   `json:"strategy_id,omitempty"`
	Persona    *Persona `json:"persona,omitempty"`
}

// NormalizedAdAccountID garante o prefixo act_ exigido pela Graph API
func (m MetaConfig) NormalizedAdAccountID() string {
	id := strings.TrimSpace(m.AdAccountID)
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}

// PersonaInterests devolve os interesses da persona ou o nicho quando ela não tem nenhum
func (b *BusinessProfile) PersonaInterests() []string {
	if b.Persona != nil && len(b.Persona.Interests) > 0 {
		return b.Persona.Interests
	}
	if b.Niche != "" {
		return []string{b.Niche}
	}
	return nil
}

func (b *BusinessProfile) Demographics() string {
	if b.Persona == nil {
		return ""
	}
	return b.Persona.Demographics
}
