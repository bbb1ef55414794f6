package config

import (
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/ddns/pkg/ddns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/Cloud-Foundations/ddns/pkg/publicip"
)

func newUpdaters(config Config, metrics *ddns.Metrics,
	logger log.DebugLogger) ([]*ddns.Updater, error) {
	if err := config.check(); err != nil {
		return nil, err
	}
	updaters := make([]*ddns.Updater, 0, len(config.Zones))
	for _, zone := range config.Zones {
		resolver, err := publicip.New(zone.Config, logger)
		if err != nil {
			return nil, err
		}
		if zone.VerifyCredentials {
			if err := awsVerifyCredentials(zone, logger); err != nil {
				return nil, fmt.Errorf(
					"error verifying credentials for: %s: %s",
					zone.FQDN(), err)
			}
		}
		updater, err := ddns.NewUpdater(zone.ZoneConfig, ddns.Params{
			Logger:         logger,
			Metrics:        metrics,
			NewZoneManager: awsNewZoneManagerFunc(zone, logger),
			Resolver:       resolver,
		})
		if err != nil {
			return nil, err
		}
		updaters = append(updaters, updater)
	}
	return updaters, nil
}

func (c Config) check() error {
	if len(c.Zones) < 1 {
		return errors.New("no zones specified")
	}
	for _, zone := range c.Zones {
		if err := zone.check(); err != nil {
			return fmt.Errorf("error in zone: %s: %s", zone.FQDN(), err)
		}
	}
	return nil
}

func (zc ZoneConfig) check() error {
	if zc.HostedZoneName == "" {
		return errors.New("no hosted_zone_name specified")
	}
	if zc.RecordName == "" {
		return errors.New("no record_name specified")
	}
	if zc.Region == "" {
		return errors.New("no region specified")
	}
	numSources := 0
	if zc.AwsCredentials != nil {
		numSources++
	}
	if zc.AwsProfile != "" {
		numSources++
	}
	if zc.AwsSecretId != "" {
		numSources++
	}
	if numSources > 1 {
		return errors.New("multiple AWS credential sources specified")
	}
	if zc.AwsCredentials != nil {
		return zc.AwsCredentials.Check()
	}
	return nil
}
