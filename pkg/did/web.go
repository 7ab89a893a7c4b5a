/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	diddoc "github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/did-go/method/web"
	vdrapi "github.com/trustbloc/did-go/vdr/api"
)

const (
	defaultRetryMax   = 2
	defaultWebTimeout = 10 * time.Second
	dialTimeout       = 5 * time.Second
)

// ErrForbiddenAddress is returned when a did:web host resolves to an address that may not be fetched.
var ErrForbiddenAddress = errors.New("forbidden address")

// Carrier-grade NAT range, not covered by netip.Addr.IsPrivate.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10") //nolint:gochecknoglobals

type webVDR struct {
	http *http.Client
	*web.VDR
}

func (w *webVDR) Read(didID string, opts ...vdrapi.DIDMethodOption) (*diddoc.DocResolution, error) {
	docRes, err := w.VDR.Read(didID, append(opts, vdrapi.WithOption(web.HTTPClientOpt, w.http))...)
	if err != nil {
		return nil, fmt.Errorf("failed to read did web: %w", err)
	}

	return docRes, nil
}

// newWebHTTPClient returns a retrying client whose dialer refuses non-public addresses unless
// private networks are allowed. The check runs on the resolved address, so DNS answers cannot bypass it.
func newWebHTTPClient(o *options) *http.Client {
	dialer := &net.Dialer{Timeout: dialTimeout}

	if !o.allowPrivateNetworks {
		dialer.Control = denyNonPublicAddress
	}

	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.DialContext = dialer.DialContext
	transport.Proxy = nil

	if o.tlsConfig != nil {
		transport.TLSClientConfig = o.tlsConfig
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: o.webTimeout, Transport: transport}
	rc.RetryMax = o.retryMax
	rc.Logger = nil
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if errors.Is(err, ErrForbiddenAddress) {
			return false, err
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &http.Client{
		Timeout:   o.webTimeout,
		Transport: &retryablehttp.RoundTripper{Client: rc},
	}
}

func denyNonPublicAddress(_, address string, _ syscall.RawConn) error {
	addrPort, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, address)
	}

	if !isPublicAddr(addrPort.Addr()) {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, addrPort.Addr())
	}

	return nil
}

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()

	switch {
	case addr.IsLoopback(), addr.IsPrivate(), addr.IsUnspecified(),
		addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast(), addr.IsInterfaceLocalMulticast(),
		addr.IsMulticast():
		return false
	case sharedAddressSpace.Contains(addr):
		return false
	default:
		return true
	}
}
