package phashsvc_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"phishguard/pkg/serrors"
	"phishguard/pkg/similarity/phashsvc"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *phashsvc.Client {
	return phashsvc.New(&http.Client{Transport: fn}, "http://checker:8081")
}

func TestNormalizeImageURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "size appended when absent",
			in:   "https://cdn.discordapp.com/avatars/1/abc.png",
			out:  "https://cdn.discordapp.com/avatars/1/abc.png?size=512",
			ok:   true,
		},
		{
			name: "existing size preserved",
			in:   "https://cdn.discordapp.com/avatars/1/abc.png?size=4096",
			out:  "https://cdn.discordapp.com/avatars/1/abc.png?size=4096",
			ok:   true,
		},
		{
			name: "other query params kept alongside appended size",
			in:   "https://cdn.discordapp.com/avatars/1/abc.png?v=2",
			out:  "https://cdn.discordapp.com/avatars/1/abc.png?size=512&v=2",
			ok:   true,
		},
		{
			name: "invalid url returns error",
			in:   "http://exa mple.com/a.png",
			out:  "",
			ok:   false,
		},
	}

	for _, tc := range cases {
		got, err := phashsvc.NormalizeImageURL(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got != tc.out {
				t.Errorf("%s: got %q, want %q", tc.name, got, tc.out)
			}
		} else if err == nil {
			t.Errorf("%s: expected error, got none (result %q)", tc.name, got)
		}
	}
}

func TestClient_CheckImage_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "checker:8081", r.URL.Host)
		require.Equal(t, "/v1/check-image", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// the submitted URL must carry the normalized size parameter
		require.JSONEq(t,
			`{"url":"https://cdn.discordapp.com/avatars/1/abc.png?size=512"}`,
			string(body))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"phashDistance":3}`)),
		}, nil
	})

	res, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png")
	require.NoError(t, err)
	require.Equal(t, 3, res.PhashDistance)
}

func TestClient_CheckImage_existingSizeNotDuplicated(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t,
			`{"url":"https://cdn.discordapp.com/avatars/1/abc.png?size=4096"}`,
			string(body))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"phashDistance":0}`)),
		}, nil
	})

	res, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png?size=4096")
	require.NoError(t, err)
	require.Equal(t, 0, res.PhashDistance)
}

func TestClient_CheckImage_timeout(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})

	_, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestClient_CheckImage_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_CheckImage_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_CheckImage_invalidURL(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for invalid URL")

		return nil, nil
	})

	_, err := c.CheckImage(context.Background(), "http://exa mple.com/a.png")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_CheckImage_malformedResponse(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("not json")),
		}, nil
	})

	_, err := c.CheckImage(context.Background(), "https://cdn.discordapp.com/avatars/1/abc.png")
	require.Error(t, err)
}
