package service

import (
	"context"
	"encoding/json"
	"net"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var redisLogger = log.WithFields(log.Fields{
	"persistence": "redis",
})

type RedisPersistenceService struct {
	redis  *redis.Client
	config *RedisPersistenceConfig
}

func NewRedisPersistenceService(config *RedisPersistenceConfig) (*RedisPersistenceService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	// redis might still be starting up, retry the first ping a few times
	err := backoff.Retry(func() error {
		return client.Ping(context.Background()).Err()
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
	if err != nil {
		return nil, errors.Wrapf(err, "can not connect to redis %s:%s", config.Host, config.Port)
	}

	return &RedisPersistenceService{
		redis:  client,
		config: config,
	}, nil
}

func (s *RedisPersistenceService) NewStore(id string, subIDs ...string) Store {
	if len(subIDs) > 0 {
		id += ":" + strings.Join(subIDs, ":")
	}

	if s.config != nil && s.config.Namespace != "" {
		id = s.config.Namespace + ":" + id
	}

	return &RedisStore{
		redis: s.redis,
		ID:    id,
	}
}

type RedisStore struct {
	redis *redis.Client

	ID string
}

func (store *RedisStore) Load(val interface{}) error {
	if store.redis == nil {
		return errors.New("can not load from redis, the redis persistence is not configured")
	}

	cmd := store.redis.Get(context.Background(), store.ID)
	data, err := cmd.Result()

	redisLogger.Debugf("[redis] get key %q, data = %s", store.ID, string(data))

	if err != nil {
		if err == redis.Nil {
			return ErrPersistenceNotExists
		}

		return err
	}

	// skip null data
	if len(data) == 0 || data == "null" {
		return ErrPersistenceNotExists
	}

	return json.Unmarshal([]byte(data), val)
}

func (store *RedisStore) Save(val interface{}) error {
	if val == nil {
		return nil
	}

	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	cmd := store.redis.Set(context.Background(), store.ID, data, 0)
	_, err = cmd.Result()

	redisLogger.Debugf("[redis] set key %q, data = %s", store.ID, string(data))

	return err
}

func (store *RedisStore) Reset() error {
	_, err := store.redis.Del(context.Background(), store.ID).Result()
	return err
}
