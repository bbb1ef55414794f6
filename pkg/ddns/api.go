/*
Package ddns implements dynamic DNS updates for a set of hosted
zones.

Each configured zone is driven by its own Updater, which discovers
the public address(es) of this host and unconditionally overwrites
the zone's DNS record(s) to match: once, or on a repeating interval
in daemon mode. Updaters for different zones run concurrently and
share no state, so a failing zone never affects another zone's
updates. A single broadcast cancellation channel stops all updaters.

The config sub-package allows for easy configuration and wires in the
AWS Route 53 back-end and the public address resolver.
*/
package ddns

import (
	"net"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
)

// AddressResolver discovers the current public address of this host
// for one address family. It is used to plugin the address discovery
// mechanism.
type AddressResolver interface {
	ResolveIPv4() (net.IP, error)
	ResolveIPv6() (net.IP, error)
}

type Params struct {
	Logger  log.DebugLogger
	Metrics *Metrics // Optional.
	// NewZoneManager creates the DNS provider client for one update
	// cycle. It is called at the start of every cycle, so that
	// time-limited credentials are re-evaluated rather than cached
	// for the process lifetime.
	NewZoneManager func() (dns.ZoneManager, error)
	Resolver       AddressResolver
}

type Updater struct {
	config ZoneConfig
	p      Params
}

// ZoneConfig describes one zone to keep updated. It is read-only
// once an Updater is created.
type ZoneConfig struct {
	EnableIPv4      bool          `yaml:"enable_ipv4"`
	EnableIPv6      bool          `yaml:"enable_ipv6"`
	HostedZoneName  string        `yaml:"hosted_zone_name"`
	RecordName      string        `yaml:"record_name"`
	Region          string        `yaml:"region"`
	TTL             time.Duration `yaml:"ttl"`              // Def: 5m.
	UpdateFrequency time.Duration `yaml:"update_frequency"` // Min: 1m.
}

// FQDN returns the fully-qualified name of the record that the zone
// configuration updates.
func (zc ZoneConfig) FQDN() string {
	return zc.RecordName + "." + zc.HostedZoneName
}

// NewUpdater creates an *Updater for one zone. Missing optional
// configuration is defaulted; invalid configuration yields an error.
func NewUpdater(config ZoneConfig, params Params) (*Updater, error) {
	return newUpdater(config, params)
}

// Run drives repeated update cycles: one immediately and then one
// per update_frequency interval, until cancelChannel is closed.
// Cycle failures are logged and retried at the next interval tick;
// they do not terminate the loop. Cycles are strictly sequential. A
// cancellation observed while waiting terminates immediately; a
// cycle already underway always runs to completion first.
func (u *Updater) Run(cancelChannel <-chan struct{}) {
	u.run(cancelChannel)
}

// UpdateOnce performs a single update cycle: find the hosted zone,
// discover an address for each enabled family, then overwrite the
// zone's records with one atomic batch. If discovery fails for any
// enabled family, nothing is submitted. With no families enabled the
// cycle performs no network mutation.
func (u *Updater) UpdateOnce() error {
	return u.updateOnce()
}

// RunZones runs one Updater per zone concurrently. In daemon mode
// the updaters run until cancelChannel is closed and the returned
// error is always nil. Otherwise each zone is updated exactly once
// and an error is returned if any zone failed; the remaining zones
// still run to completion.
func RunZones(updaters []*Updater, daemon bool,
	cancelChannel <-chan struct{}, logger log.DebugLogger) error {
	return runZones(updaters, daemon, cancelChannel, logger)
}
