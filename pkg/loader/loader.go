package loader

import (
	"bytes"
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/itinerary"
	"golang.org/x/net/html"
)

type Loader struct {
	config Config
	client *http.Client
}

func NewLoader(config Config) *Loader {
	return &Loader{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Load retrieves the page at source and returns a document containing only the route container.
func (l *Loader) Load(ctx context.Context, source string) (*html.Node, error) {
	log.Debug().Str("url", source).Msg("Loading route page")

	body, err := l.fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	// The HTML5 parsing algorithm recovers from malformed markup instead of reporting it.
	root, err := html.ParseWithOptions(bytes.NewReader(body), html.ParseOptionEnableScripting(l.config.Scripting))
	if err != nil {
		return nil, &itinerary.FetchError{URL: source, Err: err}
	}

	return narrow(root, l.config.ContainerID)
}
