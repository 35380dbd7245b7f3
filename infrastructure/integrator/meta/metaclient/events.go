package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

// SendEvents envia eventos para a API de Conversões do pixel. Assim como as criações, não é repetido.
func (c *MetaClient) SendEvents(ctx context.Context, token string, pixelID string, events []domain.ConversionEvent) (*metadomain.EventsResponse, error) {
	form := url.Values{}
	if err := setJSON(form, "data", events); err != nil {
		return nil, err
	}

	body, err := c.post(ctx, token, fmt.Sprintf("%s/events", pixelID), form)
	if err != nil {
		return nil, err
	}

	var response metadomain.EventsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).WithField("pixel_id", pixelID).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar resposta")
	}

	return &response, nil
}
