// Package phashsvc provides a similarity.Client implementation backed by the
// perceptual-hash checker service's HTTP API.
package phashsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"phishguard/pkg/serrors"
	"phishguard/pkg/similarity"
)

// defaultImageSize is appended as the `size` query parameter when the
// submitted URL does not already carry one, to normalize request cost.
const defaultImageSize = 512

// Client talks to the checker service's HTTP API and fulfills the
// similarity.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the checker service
	baseURL    string       // baseURL is the checker service endpoint, e.g. "http://checker:8081"
}

// NormalizeImageURL ensures the image URL carries a size query parameter,
// appending size=512 when absent. A size already present is left untouched.
func NormalizeImageURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse image URL: %w", err)
	}

	q := u.Query()
	if !q.Has("size") {
		q.Set("size", strconv.Itoa(defaultImageSize))
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// CheckImage submits the image at URL to the checker service and returns the
// perceptual distance to the nearest known abusive image. Transport failures
// are reported as serrors.ErrTimeout or serrors.ErrUnavailable.
func (c *Client) CheckImage(ctx context.Context, URL string) (*similarity.Result, error) {
	URL, err := NormalizeImageURL(URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid image URL")
	}

	type checkReq struct {
		URL string `json:"url"`
	}
	bodyBytes, err := json.Marshal(checkReq{URL: URL})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimRight(c.baseURL, "/")+"/v1/check-image",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "check image timed out")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach checker service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"check image failed: %s", strings.TrimSpace(string(b)))
	}

	// successful; fields beyond phashDistance are provider-specific and ignored
	var checkResp struct {
		PhashDistance int `json:"phashDistance"`
	}
	if err := json.Unmarshal(b, &checkResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &similarity.Result{PhashDistance: checkResp.PhashDistance}, nil
}

// Ensure Client conforms to the similarity.Client interface at compile time.
var _ similarity.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to talk to the
// checker service at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}
