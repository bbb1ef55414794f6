/*
Package publicip discovers the public IP address of this host by
querying an external "what is my IP" service. Each query is issued
over a connection explicitly bound to the requested address family,
so a dual-stack host cannot silently report the wrong family's
address.
*/
package publicip

import (
	"net"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/log"
)

// DefaultLookupURL is the lookup service used when none is configured.
// The service must respond to a GET request with the caller's address
// as plain text.
const DefaultLookupURL = "https://ifconfig.me/ip"

type Config struct {
	IPv4LookupURL string        `yaml:"ipv4_lookup_url"` // Def: DefaultLookupURL.
	IPv6LookupURL string        `yaml:"ipv6_lookup_url"` // Def: DefaultLookupURL.
	Timeout       time.Duration `yaml:"timeout"`         // Def: 15s, min: 1s.
}

type Resolver struct {
	config Config
	logger log.DebugLogger
}

// New creates a *Resolver. The logger is used for logging messages.
func New(config Config, logger log.DebugLogger) (*Resolver, error) {
	return newResolver(config, logger)
}

// ResolveIPv4 returns the public IPv4 address of this host. The
// lookup is performed over an IPv4-bound connection. No retries are
// attempted.
func (r *Resolver) ResolveIPv4() (net.IP, error) {
	return r.resolveIPv4()
}

// ResolveIPv6 returns the public IPv6 address of this host. The
// lookup is performed over an IPv6-bound connection. No retries are
// attempted.
func (r *Resolver) ResolveIPv6() (net.IP, error) {
	return r.resolveIPv6()
}
