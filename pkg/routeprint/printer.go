package routeprint

import (
	"context"
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/cachedresults"
	"github.com/travigo/routeprint/pkg/extractor"
	"github.com/travigo/routeprint/pkg/formatter"
	"github.com/travigo/routeprint/pkg/itinerary"
	"github.com/travigo/routeprint/pkg/loader"
)

// Printer runs the load, extract and format pipeline for a route page.
type Printer struct {
	Loader    *loader.Loader
	Extractor *extractor.Extractor

	// Cache is optional.
	Cache *cachedresults.Cache
}

func NewPrinter(config loader.Config, cache *cachedresults.Cache) (*Printer, error) {
	routeExtractor, err := extractor.NewExtractor(extractor.DefaultMarkup())
	if err != nil {
		return nil, err
	}

	return &Printer{
		Loader:    loader.NewLoader(config),
		Extractor: routeExtractor,
		Cache:     cache,
	}, nil
}

func (p *Printer) Route(ctx context.Context, source string) (*itinerary.Route, error) {
	document, err := p.Loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	route, err := p.Extractor.Extract(document)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if event := log.Debug(); event.Enabled() {
		event.Str("url", source).Msg(pretty.Sprint(route))
	}

	return route, nil
}

func (p *Printer) Text(ctx context.Context, source string) (string, error) {
	return p.Render(ctx, source, formatter.OutputText)
}

func (p *Printer) Render(ctx context.Context, source string, output formatter.Output) (string, error) {
	cacheKey := cachedresults.Key(string(output), source)
	if p.Cache != nil {
		if cached, found := p.Cache.Get(ctx, cacheKey); found {
			log.Debug().Str("url", source).Msg("Rendered route served from cache")
			return cached, nil
		}
	}

	route, err := p.Route(ctx, source)
	if err != nil {
		return "", err
	}

	rendered, err := formatter.Render(route, output)
	if err != nil {
		return "", fmt.Errorf("%s: %w", source, err)
	}

	if p.Cache != nil {
		p.Cache.Set(ctx, cacheKey, rendered)
	}

	return rendered, nil
}
