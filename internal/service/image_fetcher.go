package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lshigami/scribeset/config"
)

// ImageFetcher downloads stored images back from the hosting service.
type ImageFetcher interface {
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}

type httpImageFetcher struct {
	client *http.Client
}

func NewImageFetcher(cfg *config.Config) ImageFetcher {
	return NewHTTPImageFetcher(&http.Client{Timeout: cfg.Fetch.Timeout})
}

func NewHTTPImageFetcher(client *http.Client) ImageFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpImageFetcher{client: client}
}

// Fetch returns the body of a 200 response. Any other outcome is wrapped in ErrFetchFailed.
func (f *httpImageFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image URL is empty", ErrFetchFailed)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrFetchFailed, imageURL, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetchFailed, imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrFetchFailed, resp.StatusCode, imageURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body from %s: %v", ErrFetchFailed, imageURL, err)
	}
	return data, nil
}
