/*
Package config wraps the ddns and associated plugin packages and
creates zone updaters based on configuration data.
*/
package config

import (
	"github.com/Cloud-Foundations/ddns/pkg/awsutil/awscreds"
	"github.com/Cloud-Foundations/ddns/pkg/ddns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/Cloud-Foundations/ddns/pkg/publicip"
)

type Config struct {
	Zones []ZoneConfig `yaml:"zones"`
}

// ZoneConfig extends ddns.ZoneConfig with the AWS credential source
// and address lookup configuration for one zone. At most one of
// aws_credentials, aws_secret_id or aws_profile may be specified;
// with none, the SDK default credential chain is used.
// aws_assume_role_arn composes on top of any source.
type ZoneConfig struct {
	AwsAssumeRoleArn  string                      `yaml:"aws_assume_role_arn"`
	AwsCredentials    *awscreds.StaticCredentials `yaml:"aws_credentials"`
	AwsProfile        string                      `yaml:"aws_profile"`
	AwsSecretId       string                      `yaml:"aws_secret_id"`
	ddns.ZoneConfig   `yaml:",inline"`
	publicip.Config   `yaml:",inline"`
	VerifyCredentials bool `yaml:"verify_credentials"`
}

// New creates one *ddns.Updater per configured zone, wiring in the
// AWS Route 53 back-end and a public address resolver. The metrics
// may be nil. The logger is used for logging messages.
func New(config Config, metrics *ddns.Metrics,
	logger log.DebugLogger) ([]*ddns.Updater, error) {
	return newUpdaters(config, metrics, logger)
}

// Check returns an error if the configuration is malformed.
func (c Config) Check() error {
	return c.check()
}
