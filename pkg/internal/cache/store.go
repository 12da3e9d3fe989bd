package cache

import (
	"context"

	redis_store "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var S *redis_store.RedisStore

func NewStore() error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("cache.addr"),
		Password: viper.GetString("cache.password"),
		DB:       viper.GetInt("cache.db"),
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	S = redis_store.NewRedis(rdb)

	return nil
}
