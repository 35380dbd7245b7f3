package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

type adCreativeRef struct {
	CreativeID string `json:"creative_id"`
}

func (c *MetaClient) CreateCampaign(ctx context.Context, auth domain.PlatformAuth, req *domain.CampaignRequest) (string, error) {
	categories := req.SpecialAdCategories
	if categories == nil {
		categories = []string{}
	}

	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("objective", string(req.Objective))
	form.Set("status", req.Status)
	if err := setJSON(form, "special_ad_categories", categories); err != nil {
		return "", err
	}

	return c.create(ctx, auth, "campaigns", form)
}

func (c *MetaClient) CreateAdSet(ctx context.Context, auth domain.PlatformAuth, req *domain.AdSetRequest) (string, error) {
	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("campaign_id", req.CampaignID)
	form.Set("daily_budget", strconv.FormatInt(req.DailyBudget, 10))
	form.Set("billing_event", req.BillingEvent)
	form.Set("optimization_goal", req.OptimizationGoal)
	form.Set("bid_strategy", req.BidStrategy)
	form.Set("status", req.Status)
	if err := setJSON(form, "targeting", req.Targeting); err != nil {
		return "", err
	}
	if req.PromotedObject != nil {
		if err := setJSON(form, "promoted_object", req.PromotedObject); err != nil {
			return "", err
		}
	}

	return c.create(ctx, auth, "adsets", form)
}

func (c *MetaClient) CreateAdCreative(ctx context.Context, auth domain.PlatformAuth, req *domain.AdCreativeRequest) (string, error) {
	form := url.Values{}
	form.Set("name", req.Name)
	if err := setJSON(form, "object_story_spec", req.ObjectStorySpec); err != nil {
		return "", err
	}

	return c.create(ctx, auth, "adcreatives", form)
}

func (c *MetaClient) CreateAd(ctx context.Context, auth domain.PlatformAuth, req *domain.AdRequest) (string, error) {
	form := url.Values{}
	form.Set("name", req.Name)
	form.Set("adset_id", req.AdSetID)
	form.Set("status", req.Status)
	if err := setJSON(form, "creative", adCreativeRef{CreativeID: req.CreativeID}); err != nil {
		return "", err
	}

	return c.create(ctx, auth, "ads", form)
}

// DeleteObject remove qualquer objeto da Graph API pelo id
func (c *MetaClient) DeleteObject(ctx context.Context, token string, objectID string) error {
	body, err := c.delete(ctx, token, objectID)
	if err != nil {
		return err
	}

	var response metadomain.DeleteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrap(err, "erro ao decodificar resposta")
	}

	if !response.Success {
		return fmt.Errorf("o Meta não confirmou a remoção do objeto %s", objectID)
	}

	return nil
}

// create nunca é repetido: um POST que falhou pode ter criado o objeto
func (c *MetaClient) create(ctx context.Context, auth domain.PlatformAuth, edge string, form url.Values) (string, error) {
	body, err := c.post(ctx, auth.AccessToken, fmt.Sprintf("%s/%s", auth.AdAccountID, edge), form)
	if err != nil {
		return "", err
	}

	var response metadomain.CreateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).WithField("edge", edge).Error("Erro ao decodificar JSON")
		return "", errors.Wrap(err, "erro ao decodificar resposta")
	}

	return response.ID, nil
}

func setJSON(form url.Values, field string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar %s", field)
	}
	form.Set(field, string(encoded))
	return nil
}
