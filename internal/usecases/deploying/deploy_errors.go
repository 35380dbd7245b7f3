package deploying

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessNotConfigured = errors.New("business profile not configured")
	ErrLoadBusiness          = errors.New("error loading business profile")
	ErrLoadAssets            = errors.New("error loading creative assets")
	ErrAssetsNotFound        = errors.New("creative assets not found")
	ErrDeploymentInFlight    = errors.New("deployment already in flight for this ad account")
	ErrLockUnavailable       = errors.New("deployment lock unavailable")
	ErrListDeployments       = errors.New("error listing deployments")
)

// Mensagens devolvidas ao anunciante no DeploymentResult
const (
	msgIncompleteConfig  = "CONFIGURACIÓN INCOMPLETA: Falta Token, Cuenta o Página."
	msgValidationFailed  = "VALIDACIÓN FALLIDA: "
	msgNoStrategy        = "No hay una estrategia compatible con Meta."
	msgAllAdsBlocked     = "Meta bloqueó todos los Ads/Creatives. Campaña revertida para evitar campañas vacías."
	msgCancelled         = "Despliegue cancelado: "
	msgUnexpected        = "Error inesperado durante el despliegue: "
	msgMissingID         = "sin id"
	msgCampaignWithoutID = "Meta no devolvió el id de la campaña."
	msgAdSetWithoutID    = "Meta no devolvió el id del AdSet "
)

const reasonVideoNotUploaded = "video sin videoId subido a Meta"

// DeploymentError carrega o código da API junto do erro de domínio
type DeploymentError struct {
	Err     error
	Code    string
	Details string
}

func (e *DeploymentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

func NewDeploymentError(err error, code string, details string) *DeploymentError {
	return &DeploymentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
