package domain

import (
	"strings"
	"time"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaText  MediaKind = "text"
)

type FunnelStage string

const (
	FunnelCold FunnelStage = "COLD"
	FunnelWarm FunnelStage = "WARM"
	FunnelHot  FunnelStage = "HOT"
)

// AssetMetadata carrega apenas os campos que o deploy e a UI conhecem
type AssetMetadata struct {
	CTA         string `json:"cta,omitempty"`
	Description string `json:"description,omitempty"`
	// VideoID é o id do vídeo já enviado para a biblioteca do Meta
	VideoID string `json:"video_id,omitempty"`
	Angle   string `json:"angle,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
}

type CreativeAsset struct {
	ID          string        `json:"id"`
	Platform    Platform      `json:"platform"`
	Kind        MediaKind     `json:"kind"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Active      bool          `json:"active"`
	FunnelStage FunnelStage   `json:"funnel_stage,omitempty"`
	Metadata    AssetMetadata `json:"metadata"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (a *CreativeAsset) HasBody() bool {
	return strings.TrimSpace(a.Body) != ""
}

func (a *CreativeAsset) IsMedia() bool {
	return a.Kind == MediaImage || a.Kind == MediaVideo
}

func (a *CreativeAsset) HasMediaURL() bool {
	return strings.TrimSpace(a.URL) != ""
}

// IsPublishable é o único predicado usado pela validação e pelo deploy
func (a *CreativeAsset) IsPublishable() bool {
	return a.HasBody() && a.IsMedia() && a.HasMediaURL()
}

// HasUploadedVideo indica se um vídeo já pode ser anexado a um anúncio remoto
func (a *CreativeAsset) HasUploadedVideo() bool {
	return a.Kind == MediaVideo && strings.TrimSpace(a.Metadata.VideoID) != ""
}

// Label identifica o ativo nas mensagens de falha
func (a *CreativeAsset) Label() string {
	if a.Title != "" {
		return a.Title
	}
	return a.ID
}
