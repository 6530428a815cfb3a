package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/routeprint/pkg/formatter"
	"github.com/travigo/routeprint/pkg/itinerary"
)

type fakeRenderer struct {
	rendered string
	err      error

	source string
	output formatter.Output
}

func (f *fakeRenderer) Render(ctx context.Context, source string, output formatter.Output) (string, error) {
	f.source = source
	f.output = output

	return f.rendered, f.err
}

func get(t *testing.T, renderer *fakeRenderer, target string) (*http.Response, string) {
	t.Helper()

	resp, err := NewApp(renderer).Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func formatTarget(source string, output string) string {
	query := url.Values{}
	if source != "" {
		query.Set("url", source)
	}
	if output != "" {
		query.Set("output", output)
	}

	return "/routeprint/format?" + query.Encode()
}

func TestFormatRoute(t *testing.T) {
	renderer := &fakeRenderer{rendered: "【東京】　10:00"}

	resp, body := get(t, renderer, formatTarget("https://transit.yahoo.co.jp/search/print?from=東京", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "【東京】　10:00", body)
	assert.Equal(t, "https://transit.yahoo.co.jp/search/print?from=東京", renderer.source)
	assert.Equal(t, formatter.OutputText, renderer.output)
}

func TestFormatRouteOutputs(t *testing.T) {
	renderer := &fakeRenderer{rendered: `{"stations":[]}`}

	resp, _ := get(t, renderer, formatTarget("https://example.com/print", "json"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, formatter.OutputJSON, renderer.output)

	resp, _ = get(t, renderer, formatTarget("https://example.com/print", "yaml"))
	assert.Equal(t, "application/yaml; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestFormatRouteBadRequests(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		output string
	}{
		{name: "missing url", source: ""},
		{name: "local file", source: "/etc/passwd"},
		{name: "file scheme", source: "file:///etc/passwd"},
		{name: "unknown output", source: "https://example.com/print", output: "csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			renderer := &fakeRenderer{}

			resp, body := get(t, renderer, formatTarget(tc.source, tc.output))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, renderer.source, "renderer must not be called")

			var payload map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestFormatRouteErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "fetch",
			err:    &itinerary.FetchError{URL: "https://example.com/print", StatusCode: 404},
			status: http.StatusBadGateway,
		},
		{
			name:   "extraction",
			err:    &itinerary.ExtractionError{Rule: "container", Index: -1, Reason: "element #srline not found"},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "format",
			err:    &itinerary.FormatError{Stations: 0, Transports: 0},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := get(t, &fakeRenderer{err: tc.err}, formatTarget("https://example.com/print", ""))

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Contains(t, body, tc.err.Error())
		})
	}
}

func TestVersion(t *testing.T) {
	resp, body := get(t, &fakeRenderer{}, "/routeprint/version")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name": "routeprint", "version": "v0.1"}`, body)
}

func TestMetrics(t *testing.T) {
	resp, body := get(t, &fakeRenderer{}, "/metrics")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "go_goroutines")
}
