package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/pkg/utils"
)

const releaseTimeout = 5 * time.Second

// só remove o lock se o token ainda for o do dono
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	store *RedisStore
}

func NewRedisLocker(store *RedisStore) *RedisLocker {
	return &RedisLocker{store: store}
}

// Acquire tenta obter o lock com SET NX PX; acquired=false significa que outro processo é o dono
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token, err := utils.GenerateID()
	if err != nil {
		return nil, false, err
	}

	lockKey := l.lockKey(key)
	acquired, err := l.store.Client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao obter lock %s: %w", key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.store.Client, []string{lockKey}, token).Err(); err != nil {
			logrus.WithError(err).WithField("lock", key).Warn("Erro ao liberar lock, ele expira pelo TTL")
		}
	}

	return release, true, nil
}

func (l *RedisLocker) lockKey(key string) string {
	return fmt.Sprintf("%s:lock:%s", l.store.prefix, key)
}
