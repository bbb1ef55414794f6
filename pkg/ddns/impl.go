package ddns

import (
	"errors"
	"fmt"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/Cloud-Foundations/ddns/pkg/log/nulllogger"
)

const (
	defaultTTL             = 5 * time.Minute
	minimumUpdateFrequency = time.Minute

	resultAddressDiscovery = "address-discovery"
	resultClientSetup      = "client-setup"
	resultSuccess          = "success"
	resultUpsert           = "upsert"
	resultZoneLookup       = "zone-lookup"
)

type updateResultType struct {
	err  error
	fqdn string
}

func newUpdater(config ZoneConfig, params Params) (*Updater, error) {
	if config.HostedZoneName == "" {
		return nil, errors.New("no hosted zone name specified")
	}
	if config.RecordName == "" {
		return nil, errors.New("no record name specified")
	}
	if params.NewZoneManager == nil {
		return nil, errors.New("no zone manager factory specified")
	}
	if params.Resolver == nil && (config.EnableIPv4 || config.EnableIPv6) {
		return nil, errors.New("no address resolver specified")
	}
	if params.Logger == nil {
		params.Logger = nulllogger.New()
	}
	if config.TTL < time.Second {
		config.TTL = defaultTTL
	}
	if config.UpdateFrequency < minimumUpdateFrequency {
		config.UpdateFrequency = minimumUpdateFrequency
	}
	return &Updater{config: config, p: params}, nil
}

func runZones(updaters []*Updater, daemon bool,
	cancelChannel <-chan struct{}, logger log.DebugLogger) error {
	responseChannel := make(chan updateResultType, len(updaters))
	for _, updater := range updaters {
		go func(u *Updater) {
			var err error
			if daemon {
				u.run(cancelChannel)
			} else {
				err = u.updateOnce()
			}
			responseChannel <- updateResultType{err: err,
				fqdn: u.config.FQDN()}
		}(updater)
	}
	numFailed := 0
	for range updaters {
		response := <-responseChannel
		if response.err != nil {
			numFailed++
			logger.Printf("error updating zone: %s: %s\n",
				response.fqdn, response.err)
		}
	}
	if numFailed > 0 {
		return fmt.Errorf("failed updating %d/%d zones",
			numFailed, len(updaters))
	}
	return nil
}

// makeChanges resolves an address for each enabled family. An error
// for any enabled family invalidates the entire batch: a partial
// update would leave the zone inconsistent with the enabled-family
// intent, whereas failing the whole cycle is idempotent and safe to
// retry at the next interval tick.
func (u *Updater) makeChanges() ([]dns.RecordChange, error) {
	changes := make([]dns.RecordChange, 0, 2)
	if u.config.EnableIPv4 {
		ip, err := u.p.Resolver.ResolveIPv4()
		if err != nil {
			return nil, fmt.Errorf("error discovering IPv4 address: %s",
				err)
		}
		u.p.Logger.Debugf(1, "discovered IPv4 address: %s\n", ip)
		changes = append(changes, dns.RecordChange{
			Name:  u.config.FQDN(),
			TTL:   u.config.TTL,
			Type:  dns.TypeA,
			Value: ip.String(),
		})
	}
	if u.config.EnableIPv6 {
		ip, err := u.p.Resolver.ResolveIPv6()
		if err != nil {
			return nil, fmt.Errorf("error discovering IPv6 address: %s",
				err)
		}
		u.p.Logger.Debugf(1, "discovered IPv6 address: %s\n", ip)
		changes = append(changes, dns.RecordChange{
			Name:  u.config.FQDN(),
			TTL:   u.config.TTL,
			Type:  dns.TypeAAAA,
			Value: ip.String(),
		})
	}
	return changes, nil
}

func (u *Updater) reconcile() (string, error) {
	zoneManager, err := u.p.NewZoneManager()
	if err != nil {
		return resultClientSetup,
			fmt.Errorf("error creating DNS provider client: %s", err)
	}
	hostedZoneId, err := zoneManager.FindHostedZone(u.config.HostedZoneName)
	if err != nil {
		return resultZoneLookup, fmt.Errorf("error finding hosted zone: %s: %s",
			u.config.HostedZoneName, err)
	}
	changes, err := u.makeChanges()
	if err != nil {
		return resultAddressDiscovery, err
	}
	if len(changes) < 1 {
		u.p.Logger.Debugf(0, "no address families enabled for: %s: nothing to update\n",
			u.config.FQDN())
		return resultSuccess, nil
	}
	if err := zoneManager.UpsertRecords(hostedZoneId, changes); err != nil {
		return resultUpsert, fmt.Errorf("error upserting records for: %s: %s",
			u.config.FQDN(), err)
	}
	u.p.Logger.Printf("updated DNS for: %s\n", u.config.FQDN())
	return resultSuccess, nil
}

func (u *Updater) run(cancelChannel <-chan struct{}) {
	select {
	case <-cancelChannel:
		return
	default:
	}
	if err := u.updateOnce(); err != nil {
		u.p.Logger.Printf("error updating zone: %s: %s: will retry in: %s\n",
			u.config.FQDN(), err, u.config.UpdateFrequency)
	}
	ticker := time.NewTicker(u.config.UpdateFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-cancelChannel:
			u.p.Logger.Debugf(0, "stopped updating zone: %s\n",
				u.config.FQDN())
			return
		case <-ticker.C:
			if err := u.updateOnce(); err != nil {
				u.p.Logger.Printf("error updating zone: %s: %s: will retry in: %s\n",
					u.config.FQDN(), err, u.config.UpdateFrequency)
			} else {
				u.p.Logger.Debugf(1, "updating zone: %s again in: %s\n",
					u.config.FQDN(), u.config.UpdateFrequency)
			}
		}
	}
}

func (u *Updater) updateOnce() error {
	result, err := u.reconcile()
	if u.p.Metrics != nil {
		u.p.Metrics.record(u.config.FQDN(), result)
	}
	return err
}
