/*
Package route53 implements a DNS hosted zone manager using AWS
Route 53.
*/
package route53

import (
	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
)

type ZoneManager struct {
	awsService *route53.Route53
	logger     log.DebugLogger
}

// New creates a *ZoneManager using the provided AWS session. The
// session determines the credentials and region used for all
// operations. The logger is used for logging messages.
func New(awsSession *session.Session, logger log.DebugLogger) (
	*ZoneManager, error) {
	return newZoneManager(awsSession, logger)
}

// FindHostedZone returns the Id of the first hosted zone returned by
// a name lookup for dnsName. If the lookup returns no hosted zones an
// error wrapping dns.ErrZoneNotFound is returned. If multiple hosted
// zones share the same DNS name (a legitimate configuration for
// split-horizon DNS) the first zone listed by the provider is used:
// no disambiguation is attempted.
func (zm *ZoneManager) FindHostedZone(dnsName string) (string, error) {
	return zm.findHostedZone(dnsName)
}

// UpsertRecords submits the specified record changes to the specified
// hosted zone as a single atomic change batch.
func (zm *ZoneManager) UpsertRecords(hostedZoneId string,
	changes []dns.RecordChange) error {
	return zm.upsertRecords(hostedZoneId, changes)
}
