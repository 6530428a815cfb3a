package routeprint

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/routeprint/pkg/cachedresults"
	"github.com/travigo/routeprint/pkg/formatter"
	"github.com/travigo/routeprint/pkg/itinerary"
	"github.com/travigo/routeprint/pkg/loader"
	"github.com/urfave/cli/v2"
)

const expectedText = "【東京】　08:00\n" +
	"　↓　ＪＲ中央線快速 （1番線発）\n" +
	"【新宿】　08:14 08:20\n" +
	"　↓　ＪＲ中央・総武線各駅停車 （15番線発 → 1番線着）\n" +
	"【三鷹】　08:38"

type routeServer struct {
	*httptest.Server
	requests atomic.Int32
}

func newRouteServer(t *testing.T) *routeServer {
	t.Helper()

	content, err := os.ReadFile("testdata/print.html")
	require.NoError(t, err)

	server := &routeServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.requests.Add(1)

		switch r.URL.Path {
		case "/print":
			w.Header().Set("Content-Type", "text/html; charset=UTF-8")
			w.Write(content)
		case "/empty":
			w.Write([]byte(`<html><body><div id="srline"></div></body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestPrinter(t *testing.T, cache *cachedresults.Cache) *Printer {
	t.Helper()

	config := loader.DefaultConfig()
	config.Timeout = 5 * time.Second

	printer, err := NewPrinter(config, cache)
	require.NoError(t, err)

	return printer
}

func TestPrinterText(t *testing.T) {
	server := newRouteServer(t)

	text, err := newTestPrinter(t, nil).Text(context.Background(), server.URL+"/print")
	require.NoError(t, err)

	assert.Equal(t, expectedText, text)
}

func TestPrinterRoute(t *testing.T) {
	server := newRouteServer(t)

	route, err := newTestPrinter(t, nil).Route(context.Background(), server.URL+"/print")
	require.NoError(t, err)

	assert.Len(t, route.Stations, 3)
	assert.Len(t, route.Transports, 2)
	assert.Equal(t, itinerary.Station{Name: "新宿", ArriveTime: "08:14", DepartTime: "08:20"}, route.Stations[1])
}

func TestPrinterErrors(t *testing.T) {
	server := newRouteServer(t)
	printer := newTestPrinter(t, nil)

	_, err := printer.Text(context.Background(), server.URL+"/missing")
	var fetchErr *itinerary.FetchError
	assert.True(t, errors.As(err, &fetchErr))

	_, err = printer.Text(context.Background(), server.URL+"/empty")
	var formatErr *itinerary.FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestPrinterCache(t *testing.T) {
	server := newRouteServer(t)

	redisServer := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { client.Close() })

	printer := newTestPrinter(t, cachedresults.New(client, time.Minute))

	for i := 0; i < 3; i++ {
		text, err := printer.Text(context.Background(), server.URL+"/print")
		require.NoError(t, err)
		assert.Equal(t, expectedText, text)
	}
	assert.Equal(t, int32(1), server.requests.Load())

	encoded, err := printer.Render(context.Background(), server.URL+"/print", formatter.OutputJSON)
	require.NoError(t, err)
	assert.Contains(t, encoded, `"name": "三鷹"`)
	assert.Equal(t, int32(2), server.requests.Load())
}

func TestRenderAll(t *testing.T) {
	server := newRouteServer(t)
	sources := []string{
		server.URL + "/print",
		server.URL + "/missing",
		server.URL + "/print?again",
	}

	results := newTestPrinter(t, nil).RenderAll(context.Background(), sources, formatter.OutputText, 2)
	require.Len(t, results, 3)

	for i, result := range results {
		assert.Equal(t, sources[i], result.Source)
	}
	assert.Equal(t, expectedText, results[0].Rendered)
	assert.Error(t, results[1].Err)
	assert.Equal(t, expectedText, results[2].Rendered)
}

func runFormat(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.App{
		Name:     "routeprint",
		Writer:   &out,
		Commands: []*cli.Command{RegisterCLI()},
	}

	err := app.Run(append([]string{"routeprint", "format"}, args...))

	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	server := newRouteServer(t)

	out, err := runFormat(t, server.URL+"/print", server.URL+"/print")
	require.NoError(t, err)

	assert.Equal(t, expectedText+"\n\n"+expectedText+"\n", out)
}

func TestFormatCommandYAML(t *testing.T) {
	server := newRouteServer(t)

	out, err := runFormat(t, "--output", "yaml", server.URL+"/print")
	require.NoError(t, err)

	assert.Contains(t, out, "name: 三鷹")
}

func TestFormatCommandFailures(t *testing.T) {
	server := newRouteServer(t)

	out, err := runFormat(t, server.URL+"/print", server.URL+"/missing")
	assert.EqualError(t, err, "1 of 2 routes could not be printed")
	assert.Equal(t, expectedText+"\n", out)

	_, err = runFormat(t)
	assert.Error(t, err)

	_, err = runFormat(t, "--output", "csv", server.URL+"/print")
	assert.Error(t, err)
}
