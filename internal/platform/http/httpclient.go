package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds an HTTP client configured for outbound market data
// calls. http.DefaultClient has no timeout, so external requests always go
// through a client built here.
//
// The transport pins connection-level limits:
//   - Proxy honors the HTTP_PROXY family of environment variables
//   - Dialer.Timeout bounds TCP connection setup
//   - MaxIdleConns and IdleConnTimeout keep a pool of reusable connections
//   - TLSHandshakeTimeout bounds the HTTPS handshake
//
// The overall request deadline comes from the caller via timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
