package paint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPFetcher reads documents from a content server. Developers use it to
// iterate on the configuration documents against a live server instead of
// the embedded tree; the client carries the host's TLS trust policy.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := strings.TrimSuffix(f.BaseURL, "/") + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", name, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
