package workspace

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrBusinessRequired      = errors.New("business profile is required")
	ErrInvalidBusiness       = errors.New("invalid business profile")
	ErrBusinessNotConfigured = errors.New("business profile not configured")
	ErrInvalidAsset          = errors.New("invalid creative asset")
	ErrAssetNotFound         = errors.New("creative asset not found")

	// Erros de armazenamento
	ErrLoadBusiness  = errors.New("error loading business profile")
	ErrSaveBusiness  = errors.New("error saving business profile")
	ErrLoadAssets    = errors.New("error loading creative assets")
	ErrSaveAsset     = errors.New("error saving creative asset")
	ErrDeleteAsset   = errors.New("error deleting creative asset")
	ErrLoadCampaigns = errors.New("error loading launched campaigns")
	ErrSaveCampaign  = errors.New("error saving launched campaign")

	// Erros de serviços externos
	ErrCopyUnavailable = errors.New("copy generator not configured")
	ErrGenerateCopy    = errors.New("error generating ad copy")

	ErrGenerateID = errors.New("error generating ID")
)

// WorkspaceError é um erro com o código da API para as operações do workspace
type WorkspaceError struct {
	Err     error
	Code    string
	Details string
}

func (e *WorkspaceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *WorkspaceError) Unwrap() error {
	return e.Err
}

func NewWorkspaceError(err error, code string, details string) *WorkspaceError {
	return &WorkspaceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
