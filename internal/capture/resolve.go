package capture

import (
	"fmt"
	"net"
	"strings"
)

// Endpoint is a resolved capture target.
type Endpoint struct {
	IP   string
	Host string // empty if only the IP is known
}

// String renders the endpoint for log and intro output.
func (e Endpoint) String() string {
	if e.Host != "" {
		return fmt.Sprintf("%s (%s)", e.Host, e.IP)
	}
	return e.IP
}

// Resolve turns an IP or host name into an Endpoint. A literal IP gets
// a reverse lookup for a display name; a host name resolves to its
// first IPv4 address, falling back to the first address of any family.
func Resolve(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if ip := net.ParseIP(s); ip != nil {
		ep := Endpoint{IP: ip.String()}
		if names, err := net.LookupAddr(s); err == nil && len(names) > 0 {
			name := strings.TrimSuffix(names[0], ".")
			// Some resolvers hand the IP back as the name.
			if net.ParseIP(name) == nil {
				ep.Host = name
			}
		}
		return ep, nil
	}

	ips, err := net.LookupIP(s)
	if err != nil || len(ips) == 0 {
		return Endpoint{}, fmt.Errorf("%q is not a valid IP or host name", s)
	}
	chosen := ips[0]
	for _, ip := range ips {
		if ip.To4() != nil {
			chosen = ip
			break
		}
	}
	return Endpoint{IP: chosen.String(), Host: s}, nil
}
