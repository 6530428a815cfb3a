package extractor

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/itinerary"
	"golang.org/x/net/html"
)

type Extractor struct {
	markup *compiledMarkup
}

func NewExtractor(markup Markup) (*Extractor, error) {
	compiled, err := markup.compile()
	if err != nil {
		return nil, err
	}

	return &Extractor{markup: compiled}, nil
}

// Extract reads the stations and the transports between them, in document order.
func (e *Extractor) Extract(document *html.Node) (*itinerary.Route, error) {
	route := &itinerary.Route{}

	for i, node := range htmlquery.QuerySelectorAll(document, e.markup.station) {
		station, err := e.parseStation(i, node)
		if err != nil {
			return nil, err
		}
		route.Stations = append(route.Stations, station)
	}

	for i, node := range htmlquery.QuerySelectorAll(document, e.markup.access) {
		transport, err := e.parseAccess(i, node)
		if err != nil {
			return nil, err
		}
		route.Transports = append(route.Transports, transport)
	}

	log.Debug().
		Int("stations", len(route.Stations)).
		Int("transports", len(route.Transports)).
		Msg("Extracted route")

	return route, nil
}

func (e *Extractor) parseStation(index int, node *html.Node) (itinerary.Station, error) {
	station := itinerary.Station{}

	name := htmlquery.QuerySelector(node, e.markup.stationName)
	if name == nil {
		return station, &itinerary.ExtractionError{Rule: "station", Index: index, Reason: "no name label"}
	}
	station.Name = htmlquery.InnerText(name)

	times := htmlquery.QuerySelectorAll(node, e.markup.stationTimes)
	switch len(times) {
	case 0:
	case 1:
		station.DepartTime = htmlquery.InnerText(times[0])
	case 2:
		station.ArriveTime = htmlquery.InnerText(times[0])
		station.DepartTime = htmlquery.InnerText(times[1])
	default:
		return station, &itinerary.ExtractionError{
			Rule:   "station",
			Index:  index,
			Reason: fmt.Sprintf("%d time entries, expected at most 2", len(times)),
		}
	}

	return station, nil
}

func (e *Extractor) parseAccess(index int, node *html.Node) (itinerary.Transport, error) {
	transport := itinerary.Transport{}

	labels := htmlquery.QuerySelectorAll(node, e.markup.transportLabel)
	if len(labels) == 0 {
		return transport, &itinerary.ExtractionError{Rule: "access", Index: index, Reason: "no transport label"}
	}

	var line strings.Builder
	for _, label := range labels {
		for _, text := range htmlquery.QuerySelectorAll(label, e.markup.transportLineText) {
			line.WriteString(htmlquery.InnerText(text))
		}
	}
	transport.Line = strings.TrimSpace(line.String())

	platform := htmlquery.QuerySelector(node, e.markup.platform)
	if platform == nil {
		return transport, &itinerary.ExtractionError{Rule: "access", Index: index, Reason: "no platform label"}
	}
	transport.Platform = strings.TrimSpace(htmlquery.InnerText(platform))

	return transport, nil
}
