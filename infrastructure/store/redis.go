package store

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultKeyPrefix = "phoenix"

// RedisStore guarda documentos JSON isolados por namespace (a licença do anunciante)
type RedisStore struct {
	Client *redis.Client
	prefix string
}

// InitRedis conecta no Redis configurado e confirma a conexão com um PING
func InitRedis(ctx context.Context, cfg config.Redis) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logrus.WithField("addr", cfg.Addr).Info("Conectado ao Redis")

	return NewRedisStore(client, cfg.KeyPrefix), nil
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{Client: client, prefix: prefix}
}

// Key monta <prefixo>:<namespace>:<nome>
func (r *RedisStore) Key(namespace, name string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, name)
}

// GetJSON devolve false quando a chave não existe
func (r *RedisStore) GetJSON(ctx context.Context, namespace, name string, dest any) (bool, error) {
	raw, err := r.Client.Get(ctx, r.Key(namespace, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "erro ao ler %s", name)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "erro ao decodificar %s", name)
	}

	return true, nil
}

func (r *RedisStore) SetJSON(ctx context.Context, namespace, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar %s", name)
	}

	if err := r.Client.Set(ctx, r.Key(namespace, name), raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", name)
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, namespace, name string) error {
	return r.Client.Del(ctx, r.Key(namespace, name)).Err()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisStore) Close() {
	if r != nil && r.Client != nil {
		if err := r.Client.Close(); err != nil {
			logrus.WithError(err).Error("Erro ao fechar conexão com o Redis")
		}
	}
}
