package formatter

import (
	"strings"

	"github.com/travigo/routeprint/pkg/itinerary"
)

const (
	ideographicSpace = "　"
	downArrow        = "↓"
)

// Format interleaves stations and transports into one block of text, one line each,
// without a trailing newline.
func Format(stations []itinerary.Station, transports []itinerary.Transport) (string, error) {
	route := itinerary.Route{Stations: stations, Transports: transports}
	if err := route.Validate(); err != nil {
		return "", err
	}

	var text strings.Builder
	for i, transport := range transports {
		text.WriteString(StationText(stations[i]))
		text.WriteString("\n")
		text.WriteString(TransportText(transport))
		text.WriteString("\n")
	}
	text.WriteString(StationText(stations[len(stations)-1]))

	return text.String(), nil
}

// StationText renders a station as 【name】 followed by its arrival and departure times.
func StationText(station itinerary.Station) string {
	times := station.ArriveTime + station.DepartTime
	if station.HasArriveTime() && station.HasDepartTime() {
		times = station.ArriveTime + " " + station.DepartTime
	}

	return "【" + station.Name + "】" + ideographicSpace + times
}

func TransportText(transport itinerary.Transport) string {
	return ideographicSpace + downArrow + ideographicSpace + transport.Line + " （" + transport.Platform + "）"
}
