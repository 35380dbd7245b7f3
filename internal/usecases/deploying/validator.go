package deploying

import (
	"strings"

	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

const (
	errMissingLandingPage = "Falta URL de destino (landing_page_url)."
	errNoPublishable      = "No hay activos publicables con copy + media (imagen o video)."
	errMissingCopy        = "Hay activos sin texto/copy."
	errMissingMediaURL    = "Hay activos sin URL de media."
	errMissingVideoID     = "Hay videos sin videoId subido a Meta."
)

// Validate roda todas as verificações e acumula os erros, sem interromper na primeira falha
func Validate(business *domain.BusinessProfile, assets []*domain.CreativeAsset) *domain.ValidationResult {
	errs := make([]string, 0)

	if business == nil || strings.TrimSpace(business.LandingPageURL) == "" {
		errs = append(errs, errMissingLandingPage)
	}

	publishable := make([]*domain.CreativeAsset, 0, len(assets))
	var missingCopy, missingURL, missingVideoID bool
	for _, asset := range assets {
		if asset == nil {
			continue
		}

		if asset.IsPublishable() {
			publishable = append(publishable, asset)
		}
		if !asset.HasBody() {
			missingCopy = true
		}
		if asset.IsMedia() && !asset.HasMediaURL() {
			missingURL = true
		}
		if asset.Kind == domain.MediaVideo && !asset.HasUploadedVideo() {
			missingVideoID = true
		}
	}

	if len(publishable) == 0 {
		errs = append(errs, errNoPublishable)
	}
	if missingCopy {
		errs = append(errs, errMissingCopy)
	}
	if missingURL {
		errs = append(errs, errMissingMediaURL)
	}
	if missingVideoID {
		errs = append(errs, errMissingVideoID)
	}

	return &domain.ValidationResult{
		Valid:             len(errs) == 0,
		Errors:            errs,
		PublishableAssets: publishable,
	}
}
