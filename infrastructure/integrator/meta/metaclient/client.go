package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRequestTimeout = 30 * time.Second
	defaultReadMaxTries   = 3
)

type Client interface {
	CreateCampaign(ctx context.Context, auth domain.PlatformAuth, req *domain.CampaignRequest) (string, error)
	CreateAdSet(ctx context.Context, auth domain.PlatformAuth, req *domain.AdSetRequest) (string, error)
	CreateAdCreative(ctx context.Context, auth domain.PlatformAuth, req *domain.AdCreativeRequest) (string, error)
	CreateAd(ctx context.Context, auth domain.PlatformAuth, req *domain.AdRequest) (string, error)
	DeleteObject(ctx context.Context, token string, objectID string) error
	GetAdAccount(ctx context.Context, token string, accountID string) (*metadomain.AdAccount, error)
	ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error)
	ListPages(ctx context.Context, token string) ([]metadomain.Page, error)
	SendEvents(ctx context.Context, token string, pixelID string, events []domain.ConversionEvent) (*metadomain.EventsResponse, error)
}

type MetaClient struct {
	baseURL      string
	httpClient   *http.Client
	readMaxTries uint
	// retryInterval é o primeiro intervalo do backoff das leituras
	retryInterval time.Duration
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Meta.RequestTimeout()
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	maxTries := cfg.Meta.ReadMaxTries
	if maxTries == 0 {
		maxTries = defaultReadMaxTries
	}

	return &MetaClient{
		baseURL:       strings.TrimRight(cfg.Meta.URL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		readMaxTries:  maxTries,
		retryInterval: 500 * time.Millisecond,
	}
}

func (c *MetaClient) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
}

// post envia um formulário url-encoded; objetos aninhados vão como JSON em cada campo
func (c *MetaClient) post(ctx context.Context, token, path string, form url.Values) ([]byte, error) {
	form.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *MetaClient) get(ctx context.Context, token, path string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path)+"?"+query.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	return c.do(req)
}

func (c *MetaClient) delete(ctx context.Context, token, path string) ([]byte, error) {
	query := url.Values{}
	query.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path)+"?"+query.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	return c.do(req)
}

func (c *MetaClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", req.URL.Path).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse devolve o corpo das respostas 2xx e um *GraphError nas demais
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	graphErr := ParseErrorResponse(resp.StatusCode, body)
	if graphErr.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			graphErr.Details.Code, graphErr.Details.ErrorSubcode)
	}

	return nil, graphErr
}

// ParseErrorResponse tenta parsear um erro da API do Meta; corpos fora do padrão viram a mensagem
func ParseErrorResponse(status int, body []byte) *metadomain.GraphError {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		errorResp.Error.Message = fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", status, string(body))
	}

	return &metadomain.GraphError{
		StatusCode: status,
		Details:    errorResp.Error,
	}
}
