package meta

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/metrics"
)

const (
	msgConnectionOK   = "Conexión estable con Meta API."
	msgConversionSent = "Conversión de WhatsApp enviada a Meta."
)

var (
	ErrMissingToken     = errors.New("meta access token not configured")
	ErrMissingAdAccount = errors.New("meta ad account not informed")
	ErrMissingPixel     = errors.New("meta pixel not configured")
)

// MetaIntegrator adapta o cliente da Graph API para o deploy e para a descoberta de ativos
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) CreateCampaign(ctx context.Context, auth domain.PlatformAuth, req *domain.CampaignRequest) (string, error) {
	id, err := s.Client.CreateCampaign(ctx, auth, req)
	s.observe("create_campaign", auth.AdAccountID, err)
	return id, err
}

func (s *MetaIntegrator) CreateAdSet(ctx context.Context, auth domain.PlatformAuth, req *domain.AdSetRequest) (string, error) {
	id, err := s.Client.CreateAdSet(ctx, auth, req)
	s.observe("create_adset", auth.AdAccountID, err)
	return id, err
}

func (s *MetaIntegrator) CreateAdCreative(ctx context.Context, auth domain.PlatformAuth, req *domain.AdCreativeRequest) (string, error) {
	id, err := s.Client.CreateAdCreative(ctx, auth, req)
	s.observe("create_adcreative", auth.AdAccountID, err)
	return id, err
}

func (s *MetaIntegrator) CreateAd(ctx context.Context, auth domain.PlatformAuth, req *domain.AdRequest) (string, error) {
	id, err := s.Client.CreateAd(ctx, auth, req)
	s.observe("create_ad", auth.AdAccountID, err)
	return id, err
}

func (s *MetaIntegrator) DeleteCampaign(ctx context.Context, auth domain.PlatformAuth, campaignID string) error {
	err := s.Client.DeleteObject(ctx, auth.AccessToken, campaignID)
	s.observe("delete_campaign", auth.AdAccountID, err)
	return err
}

// ValidateCredentials confirma que o token enxerga a conta de anúncios
func (s *MetaIntegrator) ValidateCredentials(ctx context.Context, token, adAccountID string) (string, error) {
	token, err := s.token(token)
	if err != nil {
		return "", err
	}

	accountID := domain.MetaConfig{AdAccountID: adAccountID}.NormalizedAdAccountID()
	if accountID == "" {
		return "", ErrMissingAdAccount
	}

	_, err = s.Client.GetAdAccount(ctx, token, accountID)
	s.observe("get_adaccount", accountID, err)
	if err != nil {
		return "", err
	}

	return msgConnectionOK, nil
}

// ListAssets devolve as contas de anúncio e as páginas que o token pode usar
func (s *MetaIntegrator) ListAssets(ctx context.Context, token string) (*domain.MetaAssets, error) {
	token, err := s.token(token)
	if err != nil {
		return nil, err
	}

	accounts, err := s.Client.ListAdAccounts(ctx, token)
	s.observe("list_adaccounts", "", err)
	if err != nil {
		return nil, err
	}

	pages, err := s.Client.ListPages(ctx, token)
	s.observe("list_pages", "", err)
	if err != nil {
		return nil, err
	}

	assets := &domain.MetaAssets{
		AdAccounts: make([]domain.AdAccountSummary, 0, len(accounts)),
		Pages:      make([]domain.PageSummary, 0, len(pages)),
	}
	for _, account := range accounts {
		assets.AdAccounts = append(assets.AdAccounts, domain.AdAccountSummary{
			ID:          account.ID,
			Name:        account.Name,
			AmountSpent: account.AmountSpent,
		})
	}
	for _, page := range pages {
		assets.Pages = append(assets.Pages, domain.PageSummary{
			ID:         page.ID,
			Name:       page.Name,
			PictureURL: page.Picture.Data.URL,
		})
	}

	logrus.WithFields(logrus.Fields{
		"ad_accounts": len(assets.AdAccounts),
		"pages":       len(assets.Pages),
	}).Debug("meta: ativos descobertos")

	return assets, nil
}

// SendConversionEvents publica eventos no pixel pela API de Conversões
func (s *MetaIntegrator) SendConversionEvents(ctx context.Context, token, pixelID string, events []domain.ConversionEvent) (*domain.ConversionReceipt, error) {
	token, err := s.token(token)
	if err != nil {
		return nil, err
	}

	pixelID = strings.TrimSpace(pixelID)
	if pixelID == "" {
		return nil, ErrMissingPixel
	}

	response, err := s.Client.SendEvents(ctx, token, pixelID, events)
	s.observe("send_events", "", err)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionReceipt{
		Success:        true,
		Message:        msgConversionSent,
		EventsReceived: response.EventsReceived,
		FBTraceID:      response.FBTraceID,
	}, nil
}

// IsTokenExpired indica se o erro veio de um token do Meta vencido ou revogado
func IsTokenExpired(err error) bool {
	var graphErr *metadomain.GraphError
	return errors.As(err, &graphErr) && graphErr.IsTokenExpired()
}

func (s *MetaIntegrator) token(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = s.cfg.Meta.AccessToken
	}
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

func (s *MetaIntegrator) observe(operation, accountID string, err error) {
	if err == nil {
		metrics.PlatformRequests.WithLabelValues(operation, "ok").Inc()
		return
	}

	metrics.PlatformRequests.WithLabelValues(operation, "error").Inc()

	fields := logrus.Fields{
		"operation":     operation,
		"ad_account_id": accountID,
		"error":         err.Error(),
	}
	var graphErr *metadomain.GraphError
	if errors.As(err, &graphErr) {
		fields["code"] = graphErr.Details.Code
		fields["subcode"] = graphErr.Details.ErrorSubcode
		fields["fbtrace_id"] = graphErr.Details.FBTraceID
	}
	logrus.WithFields(fields).Warn("meta: requisição à Graph API falhou")
}
