package route53

import (
	"errors"
	"fmt"

	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
)

// Insert trailing dot if missing.
func makeFqdn(name string) string {
	if name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}

func makeChangeBatch(changes []dns.RecordChange) *route53.ChangeBatch {
	changeList := make([]*route53.Change, 0, len(changes))
	for _, change := range changes {
		changeList = append(changeList, &route53.Change{
			Action: aws.String("UPSERT"),
			ResourceRecordSet: &route53.ResourceRecordSet{
				Name: aws.String(makeFqdn(change.Name)),
				ResourceRecords: []*route53.ResourceRecord{
					{Value: aws.String(change.Value)},
				},
				TTL:  aws.Int64(int64(change.TTL.Seconds())),
				Type: aws.String(change.Type),
			},
		})
	}
	return &route53.ChangeBatch{Changes: changeList}
}

func newZoneManager(awsSession *session.Session,
	logger log.DebugLogger) (*ZoneManager, error) {
	if awsSession == nil {
		return nil, errors.New("awsSession == nil")
	}
	return &ZoneManager{
		awsService: route53.New(awsSession),
		logger:     logger,
	}, nil
}

func (zm *ZoneManager) findHostedZone(dnsName string) (string, error) {
	output, err := zm.awsService.ListHostedZonesByName(
		&route53.ListHostedZonesByNameInput{
			DNSName: aws.String(makeFqdn(dnsName)),
		})
	if err != nil {
		return "", fmt.Errorf(
			"error calling route53:ListHostedZonesByName: %s", err)
	}
	for _, hostedZone := range output.HostedZones {
		if hostedZone.Id == nil {
			continue
		}
		zm.logger.Debugf(1, "found hosted zone: %s for: %s\n",
			*hostedZone.Id, dnsName)
		return *hostedZone.Id, nil
	}
	return "", fmt.Errorf("%w: %s", dns.ErrZoneNotFound, dnsName)
}

func (zm *ZoneManager) upsertRecords(hostedZoneId string,
	changes []dns.RecordChange) error {
	if len(changes) < 1 {
		return errors.New("no record changes specified")
	}
	input := &route53.ChangeResourceRecordSetsInput{
		ChangeBatch:  makeChangeBatch(changes),
		HostedZoneId: aws.String(hostedZoneId),
	}
	output, err := zm.awsService.ChangeResourceRecordSets(input)
	if err != nil {
		return fmt.Errorf(
			"error calling route53:ChangeResourceRecordSets: %s", err)
	}
	zm.logger.Debugf(1, "submitted change: %s\n",
		aws.StringValue(output.ChangeInfo.Id))
	return nil
}
