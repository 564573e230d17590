package tabbar

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// DefaultBaseURL is the CDN location of the Lucide SVG files.
const DefaultBaseURL = "https://unpkg.com/lucide-static/icons"

// maxSVGSize caps the size of a downloaded icon.
const maxSVGSize = 1 << 20

// Source provides the SVG text of an icon.
type Source interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// Fetcher downloads icons from a CDN serving <BaseURL>/<kebab-name>.svg.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
	// Timeout bounds each download. Zero means no limit besides the context.
	Timeout time.Duration
}

var _ Source = (*Fetcher)(nil)

// NewFetcher returns a fetcher for the given base url.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  http.DefaultClient,
		Timeout: timeout,
	}
}

// URL returns the download location of an icon.
func (f *Fetcher) URL(name string) string {
	return strings.TrimRight(f.BaseURL, "/") + "/" + NormalizeName(name) + ".svg"
}

// Fetch downloads the SVG text of an icon. The returned error is an *Error
// classifying the failure.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(name), nil)
	if err != nil {
		return "", errorf(CodeDownload, err, "Download failed: %v", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return "", errorf(CodeIconNotFound, nil, "Icon %q (%s) not found in Lucide library", name, NormalizeName(name))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", errorf(CodeHTTP, nil, "HTTP %d: %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxSVGSize))
	if err != nil {
		return "", classifyTransportError(err)
	}

	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		return "", errorf(CodeInvalidSVG, nil, "Invalid SVG content received for %q", name)
	}
	return svg, nil
}

// classifyTransportError maps a failed round trip to a network, timeout or
// generic download error.
func classifyTransportError(err error) *Error {
	var (
		dnsErr *net.DNSError
		netErr net.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return errorf(CodeTimeout, err, "Network error: Connection timed out. Please try again.")
	case errors.As(err, &dnsErr), errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return errorf(CodeNetwork, err, "Network error: Unable to connect to CDN. Please check your internet connection.")
	}
	return errorf(CodeDownload, err, "Download failed: %v", err)
}
