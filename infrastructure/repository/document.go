package repository

import "context"

// DocumentStore guarda documentos JSON por namespace; implementado por store.RedisStore
type DocumentStore interface {
	GetJSON(ctx context.Context, namespace, name string, dest any) (bool, error)
	SetJSON(ctx context.Context, namespace, name string, value any) error
}

const (
	businessDocument  = "business"
	assetsDocument    = "assets"
	campaignsDocument = "launched_campaigns"
)
