// File: pkg/aggregate/fetch.go
package aggregate

import (
	"fmt"
	"io"
	"net/http"

	"promptcat/pkg/version"
)

// userAgent identifies the tool on every remote fetch.
var userAgent = fmt.Sprintf("%s/%s", version.AppName, version.Get().Version)

// fetchURL performs a single GET against url and returns the response
// body. Any status outside the 2xx range is an error. The client
// carries no timeout; a stalled fetch stalls the whole run.
func fetchURL(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return string(body), nil
}
