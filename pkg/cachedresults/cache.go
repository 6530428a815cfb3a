package cachedresults

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/redis_client"
	"github.com/travigo/routeprint/pkg/util"
)

const DefaultExpiration = 90 * time.Minute

var (
	hitCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeprint_cache_hit_count",
		Help: "Number of rendered routes served from the cache",
	})
	missCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeprint_cache_miss_count",
		Help: "Number of rendered routes not found in the cache",
	})
)

func init() {
	prometheus.MustRegister(hitCount, missCount)
}

// Cache stores rendered routes keyed by output and page URL.
type Cache struct {
	Cache *cache.Cache[string]
}

func New(client *redis.Client, expiration time.Duration) *Cache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &Cache{
		Cache: cache.New[string](redisStore),
	}
}

func Key(output string, url string) string {
	return "routeprint:" + output + ":" + url
}

// Get returns the cached value and whether it was found. Store failures count as misses.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.Cache.Get(ctx, key)
	if err != nil {
		missCount.Inc()
		return "", false
	}

	hitCount.Inc()
	return value, true
}

func (c *Cache) Set(ctx context.Context, key string, value string) {
	if err := c.Cache.Set(ctx, key, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to store rendered route")
	}
}

// NewFromEnvironment connects to the Redis instance configured through the environment.
func NewFromEnvironment() (*Cache, error) {
	if err := redis_client.Connect(); err != nil {
		return nil, err
	}

	expiration, err := util.GetEnvironmentDuration(util.GetEnvironmentVariables(), "ROUTEPRINT_CACHE_EXPIRATION", DefaultExpiration)
	if err != nil {
		return nil, err
	}

	log.Info().Str("expiration", expiration.String()).Msg("Rendered route cache enabled")

	return New(redis_client.Client, expiration), nil
}
