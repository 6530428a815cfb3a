package extractor

import (
	"fmt"

	"github.com/antchfx/xpath"
)

// Markup is the set of XPath selectors describing where route fields live on the page.
// Station and Access are evaluated against the whole document, StationName/StationTimes
// relative to a station block, TransportLabel/Platform relative to an access block and
// TransportLineText relative to a transport label.
type Markup struct {
	Station      string
	StationName  string
	StationTimes string

	Access            string
	TransportLabel    string
	TransportLineText string
	Platform          string
}

func DefaultMarkup() Markup {
	return Markup{
		Station:      `//*[contains(@class, 'station')]`,
		StationName:  `.//*/dt`,
		StationTimes: `.//*[@class="time"]/li`,

		Access:            `//*[contains(@class, 'access')]`,
		TransportLabel:    `.//*[@class="transport"]`,
		TransportLineText: `./div/text()`,
		Platform:          `.//*[@class="platform"]`,
	}
}

type compiledMarkup struct {
	station      *xpath.Expr
	stationName  *xpath.Expr
	stationTimes *xpath.Expr

	access            *xpath.Expr
	transportLabel    *xpath.Expr
	transportLineText *xpath.Expr
	platform          *xpath.Expr
}

func (m Markup) compile() (*compiledMarkup, error) {
	compiled := &compiledMarkup{}

	selectors := []struct {
		name       string
		expression string
		target     **xpath.Expr
	}{
		{"station", m.Station, &compiled.station},
		{"station name", m.StationName, &compiled.stationName},
		{"station times", m.StationTimes, &compiled.stationTimes},
		{"access", m.Access, &compiled.access},
		{"transport label", m.TransportLabel, &compiled.transportLabel},
		{"transport line text", m.TransportLineText, &compiled.transportLineText},
		{"platform", m.Platform, &compiled.platform},
	}

	for _, selector := range selectors {
		expr, err := xpath.Compile(selector.expression)
		if err != nil {
			return nil, fmt.Errorf("compiling %s selector %q: %w", selector.name, selector.expression, err)
		}
		*selector.target = expr
	}

	return compiled, nil
}
