package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Endpoint is one (scheme, port) combination the HTTP probe tries.
type Endpoint struct {
	Scheme string
	Port   int
}

// DefaultEndpoints covers the common web-service ports. HTTPS only on 443;
// the alternates are almost always plain HTTP on internal hosts.
var DefaultEndpoints = []Endpoint{
	{"http", 80},
	{"https", 443},
	{"http", 8080},
	{"http", 3000},
	{"http", 8000},
}

type HTTPProber struct {
	Client    *http.Client
	Endpoints []Endpoint
}

// NewHTTPProber builds a prober that follows redirects and skips TLS
// verification. Internal targets frequently run self-signed certs; a cert
// error must not read as "host down".
func NewHTTPProber() *HTTPProber {
	return &HTTPProber{
		Client: &http.Client{
			Timeout: 3 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		Endpoints: DefaultEndpoints,
	}
}

// Probe issues a GET per endpoint and reports the first one that answers
// with any status below 500. A 4xx still proves a service is listening.
func (h *HTTPProber) Probe(ctx context.Context, address string) Result {
	for _, ep := range h.Endpoints {
		if ctx.Err() != nil {
			return Result{Method: MethodHTTP, Success: false}
		}
		url := fmt.Sprintf("%s://%s/", ep.Scheme, net.JoinHostPort(address, strconv.Itoa(ep.Port)))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			continue
		}
		resp, err := h.Client.Do(req)
		if err != nil {
			continue
		}
		code := resp.StatusCode
		resp.Body.Close()
		if code < 500 {
			return Result{
				Method:  MethodHTTP,
				Success: true,
				Detail:  fmt.Sprintf("HTTP %s:%d", ep.Scheme, ep.Port),
			}
		}
	}
	return Result{Method: MethodHTTP, Success: false}
}
