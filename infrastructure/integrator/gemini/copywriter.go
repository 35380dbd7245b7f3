package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
	"google.golang.org/genai"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultModel    = "gemini-2.5-flash"
	maxHeadlineSize = 40
)

var (
	ErrMissingAPIKey = errors.New("gemini api key not configured")
	ErrEmptyResponse = errors.New("gemini returned no usable copy")
)

// textModel é o ponto de contato com o modelo; devolve o texto JSON da resposta
type textModel interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type genaiModel struct {
	client *genai.Client
	model  string
}

func (m *genaiModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Copywriter gera textos de anúncio em espanhol a partir do negócio e da estratégia
type Copywriter struct {
	model textModel
}

func NewCopywriter(ctx context.Context, cfg config.Gemini) (*Copywriter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Copywriter{model: &genaiModel{client: client, model: model}}, nil
}

type copyResponse struct {
	Copies []generatedCopy `json:"copies"`
}

type generatedCopy struct {
	Headline        string `json:"headline"`
	PrimaryText     string `json:"primaryText"`
	Description     string `json:"description"`
	CTA             string `json:"cta"`
	Angle           string `json:"angle"`
	VisualDirection string `json:"visual_direction"`
	FunnelStage     string `json:"funnel_stage"`
}

func (c *Copywriter) GenerateCopy(
	ctx context.Context,
	business *domain.BusinessProfile,
	strategy *domain.MarketingStrategy,
	count int,
) ([]*domain.CreativeAsset, error) {
	raw, err := c.model.GenerateJSON(ctx, buildPrompt(business, strategy, count))
	if err != nil {
		metrics.PlatformRequests.WithLabelValues("gemini_copy", "error").Inc()
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	metrics.PlatformRequests.WithLabelValues("gemini_copy", "ok").Inc()

	copies, err := parseCopies(raw)
	if err != nil {
		logrus.WithError(err).WithField("business", business.Name).Warn("gemini: resposta fora do formato esperado")
		return nil, err
	}

	assets := make([]*domain.CreativeAsset, 0, count)
	for _, generated := range copies {
		if len(assets) == count {
			break
		}
		body := strings.TrimSpace(generated.PrimaryText)
		if body == "" {
			continue
		}

		assets = append(assets, &domain.CreativeAsset{
			Platform:    domain.PlatformMeta,
			Kind:        domain.MediaText,
			Title:       truncate(strings.TrimSpace(generated.Headline), maxHeadlineSize),
			Body:        body,
			Active:      true,
			FunnelStage: funnelStage(generated.FunnelStage),
			Metadata: domain.AssetMetadata{
				CTA:         normalizeCTA(generated.CTA),
				Description: strings.TrimSpace(generated.Description),
				Angle:       strings.TrimSpace(generated.Angle),
				Prompt:      strings.TrimSpace(generated.VisualDirection),
			},
		})
	}

	if len(assets) == 0 {
		return nil, ErrEmptyResponse
	}

	logrus.WithFields(logrus.Fields{
		"business": business.Name,
		"copies":   len(assets),
	}).Debug("gemini: textos gerados")

	return assets, nil
}

// parseCopies aceita o objeto {"copies": [...]}, uma lista solta ou um único objeto
func parseCopies(raw string) ([]generatedCopy, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return nil, ErrEmptyResponse
	}

	switch raw[0] {
	case '[':
		var copies []generatedCopy
		if err := json.Unmarshal([]byte(raw), &copies); err != nil {
			return nil, fmt.Errorf("decode copies: %w", err)
		}
		return copies, nil
	case '{':
		var response copyResponse
		if err := json.Unmarshal([]byte(raw), &response); err != nil {
			return nil, fmt.Errorf("decode copies: %w", err)
		}
		if len(response.Copies) > 0 {
			return response.Copies, nil
		}

		var single generatedCopy
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			return nil, fmt.Errorf("decode copy: %w", err)
		}
		return []generatedCopy{single}, nil
	default:
		return nil, fmt.Errorf("decode copies: unexpected payload %q", truncate(raw, 40))
	}
}

func funnelStage(value string) domain.FunnelStage {
	switch stage := domain.FunnelStage(strings.ToUpper(strings.TrimSpace(value))); stage {
	case domain.FunnelCold, domain.FunnelWarm, domain.FunnelHot:
		return stage
	default:
		return ""
	}
}

func normalizeCTA(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	return strings.ReplaceAll(value, " ", "_")
}

func truncate(value string, size int) string {
	runes := []rune(value)
	if len(runes) <= size {
		return value
	}
	return string(runes[:size])
}
