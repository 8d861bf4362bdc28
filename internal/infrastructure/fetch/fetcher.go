// Package fetch acquires workbook bytes from user-supplied URLs. It sits at
// the acquisition boundary: retry policy lives here, never in the codec.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

// Fetcher downloads files over HTTP with bounded retry
type Fetcher struct {
	client   *http.Client
	maxBytes int64
	logger   *zap.Logger
}

// NewFetcher creates a fetcher. maxBytes caps the response body size.
func NewFetcher(timeout time.Duration, maxBytes int64, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Fetch downloads the file at url. Network failures and 5xx responses are
// retried with exponential backoff; any other non-2xx status fails
// immediately. The returned error always wraps ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	fetchFn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
		if err != nil {
			return err
		}
		if int64(len(data)) > f.maxBytes {
			return backoff.Permanent(fmt.Errorf("file exceeds %d bytes", f.maxBytes))
		}
		body = data
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 15 * time.Second

	if err := backoff.Retry(fetchFn, backoff.WithContext(bo, ctx)); err != nil {
		if f.logger != nil {
			f.logger.Error("failed to fetch workbook",
				zap.String("url", url),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrFetchFailed, err)
	}

	if f.logger != nil {
		f.logger.Info("workbook fetched",
			zap.String("url", url),
			zap.Int("bytes", len(body)),
		)
	}
	return body, nil
}
