package metaclient

import (
	"context"
	"net/url"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
)

// TODO seguir paging.next quando a conta tiver mais que uma página de resultados
func (c *MetaClient) ListAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "name,id,amount_spent")

	body, err := c.read(ctx, token, "me/adaccounts", params)
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse[metadomain.AdAccount]
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar contas de anúncio")
	}

	return response.Data, nil
}

func (c *MetaClient) ListPages(ctx context.Context, token string) ([]metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", "name,id,picture")

	body, err := c.read(ctx, token, "me/accounts", params)
	if err != nil {
		return nil, err
	}

	var response metadomain.ListResponse[metadomain.Page]
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar páginas")
	}

	return response.Data, nil
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token string, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name,account_id,currency")

	body, err := c.read(ctx, token, accountID, params)
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar conta de anúncio")
	}

	return &account, nil
}

// read repete leituras com backoff exponencial; erros definitivos do Meta param na primeira tentativa
func (c *MetaClient) read(ctx context.Context, token, path string, params url.Values) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval

	return backoff.Retry(ctx, func() ([]byte, error) {
		body, err := c.get(ctx, token, path, params)
		if err == nil {
			return body, nil
		}

		var graphErr *metadomain.GraphError
		if errors.As(err, &graphErr) && !graphErr.Retryable() {
			return nil, backoff.Permanent(err)
		}

		logrus.WithError(err).WithField("path", path).Debug("meta: leitura falhou, tentando novamente")
		return nil, err
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(c.readMaxTries))
}
