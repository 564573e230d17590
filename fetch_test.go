package tabbar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCDN(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/house.svg", "/arrow-right.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write([]byte(houseSVG))
		case "/broken.svg":
			w.WriteHeader(http.StatusInternalServerError)
		case "/html.svg":
			_, _ = w.Write([]byte("<html><body>maintenance</body></html>"))
		case "/slow.svg":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_URL(t *testing.T) {
	f := NewFetcher("https://unpkg.com/lucide-static/icons/", time.Second)
	assert.Equal(t, "https://unpkg.com/lucide-static/icons/arrow-right.svg", f.URL("ArrowRight"))
}

func TestFetch_Success(t *testing.T) {
	srv := newCDN(t)
	f := NewFetcher(srv.URL, time.Second)

	svg, err := f.Fetch(context.Background(), "ArrowRight")
	require.NoError(t, err)
	assert.Equal(t, houseSVG, svg)
}

func TestFetch_ClassifiesFailures(t *testing.T) {
	srv := newCDN(t)
	f := NewFetcher(srv.URL, 100*time.Millisecond)

	testCases := []struct {
		name string
		code ErrorCode
		msg  string
	}{
		{name: "NoSuchIcon", code: CodeIconNotFound, msg: `Icon "NoSuchIcon" (no-such-icon) not found in Lucide library`},
		{name: "broken", code: CodeHTTP, msg: "HTTP 500: Internal Server Error"},
		{name: "html", code: CodeInvalidSVG, msg: `Invalid SVG content received for "html"`},
		{name: "slow", code: CodeTimeout},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Fetch(context.Background(), tc.name)
			require.Error(t, err)
			assert.Equal(t, tc.code, CodeOf(err))
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}

func TestFetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewFetcher(base, time.Second).Fetch(context.Background(), "house")
	require.Error(t, err)
	assert.Equal(t, CodeNetwork, CodeOf(err))
}

func TestFetch_CancelledContext(t *testing.T) {
	srv := newCDN(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(srv.URL, 0).Fetch(ctx, "house")
	require.Error(t, err)
	assert.Equal(t, CodeDownload, CodeOf(err))
}
