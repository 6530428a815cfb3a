package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/travigo/routeprint/pkg/itinerary"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

var Outputs = []Output{OutputText, OutputJSON, OutputYAML}

func ParseOutput(value string) (Output, error) {
	if value == "" {
		return OutputText, nil
	}

	output := Output(strings.ToLower(value))
	if !slices.Contains(Outputs, output) {
		return "", fmt.Errorf("unknown output %q, expected one of %v", value, Outputs)
	}

	return output, nil
}

// Render renders the whole route in the requested output.
func Render(route *itinerary.Route, output Output) (string, error) {
	if err := route.Validate(); err != nil {
		return "", err
	}

	switch output {
	case OutputText:
		return Format(route.Stations, route.Transports)
	case OutputJSON:
		var buffer bytes.Buffer

		encoder := json.NewEncoder(&buffer)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(route); err != nil {
			return "", err
		}

		return strings.TrimSuffix(buffer.String(), "\n"), nil
	case OutputYAML:
		encoded, err := yaml.Marshal(route)
		if err != nil {
			return "", err
		}

		return strings.TrimSuffix(string(encoded), "\n"), nil
	default:
		return "", fmt.Errorf("unknown output %q", output)
	}
}
