package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/routeprint/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Configured reports whether a Redis address has been provided through the environment.
func Configured() bool {
	env := util.GetEnvironmentVariables()

	return env["ROUTEPRINT_REDIS_ADDRESS"] != ""
}

func Connect() error {
	env := util.GetEnvironmentVariables()

	address := util.GetEnvironmentString(env, "ROUTEPRINT_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentString(env, "ROUTEPRINT_REDIS_PASSWORD", defaultConnectionPassword)
	database, err := util.GetEnvironmentInt(env, "ROUTEPRINT_REDIS_DATABASE", defaultDatabase)
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	Client = client

	return nil
}
