package loader

import (
	"time"

	"github.com/travigo/routeprint/pkg/util"
)

// DefaultContainerID is the id of the element wrapping the printable itinerary on the
// transit.yahoo.co.jp print view.
const DefaultContainerID = "srline"

const defaultUserAgent = "routeprint (https://github.com/travigo/routeprint)"

type Config struct {
	ContainerID string
	UserAgent   string

	Timeout       time.Duration
	Retries       int
	RetryInterval time.Duration

	// Scripting controls how <noscript> content is parsed.
	Scripting bool
}

func DefaultConfig() Config {
	return Config{
		ContainerID:   DefaultContainerID,
		UserAgent:     defaultUserAgent,
		Timeout:       30 * time.Second,
		Retries:       0,
		RetryInterval: 500 * time.Millisecond,
		Scripting:     true,
	}
}

func ConfigFromEnvironment() (Config, error) {
	config := DefaultConfig()
	env := util.GetEnvironmentVariables()

	config.UserAgent = util.GetEnvironmentString(env, "ROUTEPRINT_USER_AGENT", config.UserAgent)

	var err error
	if config.Timeout, err = util.GetEnvironmentDuration(env, "ROUTEPRINT_FETCH_TIMEOUT", config.Timeout); err != nil {
		return config, err
	}
	if config.Retries, err = util.GetEnvironmentInt(env, "ROUTEPRINT_FETCH_RETRIES", config.Retries); err != nil {
		return config, err
	}

	return config, nil
}
