package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/itinerary"
	"golang.org/x/net/html/charset"
)

// fetch returns the UTF-8 body found at source, which is either an http(s) URL or a local file.
func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, &itinerary.FetchError{URL: source, Err: err}
	}

	switch u.Scheme {
	case "http", "https":
		return l.fetchHTTP(ctx, u)
	case "file":
		return readFile(source, u.Path)
	case "":
		return readFile(source, source)
	default:
		return nil, &itinerary.FetchError{URL: source, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	source := u.String()
	labels := prometheus.Labels{"host": u.Host}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = l.config.RetryInterval

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", l.config.UserAgent)

		resp, err := l.client.Do(req)
		if err != nil {
			log.Debug().Err(err).Str("url", source).Msg("Route page request failed")
			return nil, &itinerary.FetchError{URL: source, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fetchErr := &itinerary.FetchError{URL: source, StatusCode: resp.StatusCode}
			if isRetryableStatus(resp.StatusCode) {
				log.Debug().Int("status", resp.StatusCode).Str("url", source).Msg("Route page request failed")
				return nil, fetchErr
			}
			return nil, backoff.Permanent(fetchErr)
		}

		reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return nil, backoff.Permanent(&itinerary.FetchError{URL: source, Err: err})
		}

		body, err := io.ReadAll(reader)
		if err != nil {
			return nil, &itinerary.FetchError{URL: source, Err: err}
		}

		return body, nil
	}

	body, err := backoff.RetryWithData[[]byte](operation,
		backoff.WithContext(backoff.WithMaxRetries(retryBackoff, uint64(l.config.Retries)), ctx))
	if err != nil {
		errorCount.With(labels).Inc()

		var fetchErr *itinerary.FetchError
		if !errors.As(err, &fetchErr) {
			err = &itinerary.FetchError{URL: source, Err: err}
		}
		return nil, err
	}

	downloadCount.With(labels).Inc()

	return body, nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}

	return false
}

func readFile(source string, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &itinerary.FetchError{URL: source, Err: err}
	}

	reader, err := charset.NewReader(bytes.NewReader(content), "")
	if err != nil {
		return nil, &itinerary.FetchError{URL: source, Err: err}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &itinerary.FetchError{URL: source, Err: err}
	}

	return body, nil
}
