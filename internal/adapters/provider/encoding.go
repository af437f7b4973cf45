package provider

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// acceptEncoding is sent on every request. Setting it explicitly disables
// the transport's transparent gzip handling, so decodeBody must cover every
// listed coding.
const acceptEncoding = "gzip, deflate, br"

// decodeBody wraps resp.Body according to its Content-Encoding. The caller
// closes both the returned reader and resp.Body.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))); enc {
	case "", "identity":
		return io.NopCloser(resp.Body), nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecode, err)
		}
		return zr, nil
	case "deflate":
		return flate.NewReader(resp.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported content encoding %q", ErrDecode, enc)
	}
}
