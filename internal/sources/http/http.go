// Package http fetches share links from a URL, typically a subscription
// or a paste.
package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"apiaccess/internal/link"
	"apiaccess/internal/logger"
	"apiaccess/internal/sources"
)

const defaultTimeout = 30 * time.Second

type URLSource struct{}

func (s *URLSource) Collect(params map[string]interface{}) ([]string, error) {
	targetURL, err := sources.StringParam(params, "url")
	if err != nil {
		return nil, err
	}
	timeout, err := sources.DurationParam(params, "timeout", defaultTimeout)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: timeout}

	logger.Log.Debugf("Fetching URL: %s", targetURL)
	resp, err := client.Get(targetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	text := string(body)
	// Subscriptions are often a single base64 blob.
	if len(link.Extract(text)) == 0 {
		if decoded, err := link.DecodeBase64(link.FixIllegalURL(text)); err == nil {
			text = decoded
		}
	}
	return link.Extract(text), nil
}

func init() {
	sources.Register("http", func() sources.Source {
		return &URLSource{}
	})
}
