// Package callerip resolves the public IP address of the machine running the
// reconciliation. The address becomes the single CIDR every ingress rule is
// scoped to.
package callerip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// DefaultEndpoint answers a GET with {"ip": "<dotted-quad>"}.
const DefaultEndpoint = "https://api.ipify.org?format=json"

var ErrResolve = fmt.Errorf("failed to resolve caller public IP")

// Client talks to an IP-echo service. The zero value is not usable; call New
// or set Endpoint explicitly.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

// New returns a Client against the default echo service with a bounded
// request timeout.
func New() *Client {
	return &Client{
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve performs one GET against the echo service and returns the caller's
// IPv4 address. No retry, no cached fallback: a failure here is fatal for the
// run.
func (c *Client) Resolve(ctx context.Context) (string, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolve, err)
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolve, err)
	} else if res.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: received HTTP status code %d", ErrResolve, res.StatusCode)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolve, err)
	}
	if body.IP == "" {
		return "", fmt.Errorf("%w: response has no ip field", ErrResolve)
	}
	if ip := net.ParseIP(body.IP); ip == nil || ip.To4() == nil {
		return "", fmt.Errorf("%w: %q is not an IPv4 address", ErrResolve, body.IP)
	}
	return body.IP, nil
}

// SingleAddrCIDR is the /32 block containing only addr.
func SingleAddrCIDR(addr string) string {
	return addr + "/32"
}
