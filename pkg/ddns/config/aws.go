package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/ddns/pkg/awsutil/awscreds"
	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/Cloud-Foundations/ddns/pkg/dns/route53"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
)

// awsCreateSession builds a fresh session from the zone's credential
// source, so that rotated or time-limited credentials are picked up
// by the cycle that follows the rotation.
func awsCreateSession(zone ZoneConfig,
	logger log.DebugLogger) (*session.Session, error) {
	var awsSession *session.Session
	var err error
	switch {
	case zone.AwsCredentials != nil:
		awsSession, err = session.NewSession(&aws.Config{
			Credentials: zone.AwsCredentials.NewCredentials(),
			Region:      aws.String(zone.Region),
		})
	case zone.AwsSecretId != "":
		staticCredentials, fetchErr := awscreds.FromSecretsManager(
			context.Background(), zone.AwsSecretId, logger)
		if fetchErr != nil {
			return nil, fetchErr
		}
		awsSession, err = session.NewSession(&aws.Config{
			Credentials: staticCredentials.NewCredentials(),
			Region:      aws.String(zone.Region),
		})
	case zone.AwsProfile != "":
		awsSession, err = session.NewSessionWithOptions(session.Options{
			Config:  aws.Config{Region: aws.String(zone.Region)},
			Profile: zone.AwsProfile,
		})
	default:
		awsSession, err = session.NewSession(&aws.Config{
			Region: aws.String(zone.Region),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("error creating session: %s", err)
	}
	if awsSession == nil {
		return nil, errors.New("awsSession == nil")
	}
	if zone.AwsAssumeRoleArn == "" {
		return awsSession, nil
	}
	creds := stscreds.NewCredentials(awsSession, zone.AwsAssumeRoleArn)
	assumedSession, err := session.NewSession(&aws.Config{
		Credentials: creds,
		Region:      aws.String(zone.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating assumed role session: %s",
			err)
	}
	if assumedSession == nil {
		return nil, errors.New("assumedSession == nil")
	}
	return assumedSession, nil
}

func awsNewZoneManagerFunc(zone ZoneConfig,
	logger log.DebugLogger) func() (dns.ZoneManager, error) {
	return func() (dns.ZoneManager, error) {
		awsSession, err := awsCreateSession(zone, logger)
		if err != nil {
			return nil, err
		}
		return route53.New(awsSession, logger)
	}
}

// awsVerifyCredentials logs the caller identity for zones that
// request it. Only inline and secret-sourced credentials can be
// verified here; profile and default chain credentials are left to
// fail in the first update cycle instead.
func awsVerifyCredentials(zone ZoneConfig, logger log.DebugLogger) error {
	staticCredentials := zone.AwsCredentials
	if staticCredentials == nil && zone.AwsSecretId != "" {
		var err error
		staticCredentials, err = awscreds.FromSecretsManager(
			context.Background(), zone.AwsSecretId, logger)
		if err != nil {
			return err
		}
	}
	if staticCredentials == nil {
		return nil
	}
	callerArn, err := staticCredentials.CallerIdentity(
		context.Background(), zone.Region)
	if err != nil {
		return err
	}
	logger.Debugf(0, "caller identity for: %s: %s\n",
		zone.FQDN(), callerArn)
	return nil
}
