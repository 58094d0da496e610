package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type Resolver struct {
	headers []string
}

// New returns a resolver trusting headers in the given order.
func New(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

// Resolve returns the normalised client IP, or "" when nothing parses.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// Forwarding headers list the original client first.
		for part := range strings.SplitSeq(value, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(raw string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
