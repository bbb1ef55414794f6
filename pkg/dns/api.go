/*
Package dns defines generic interfaces for managing DNS records in an
authoritative hosted zone.
*/
package dns

import (
	"errors"
	"time"
)

const (
	TypeA    = "A"
	TypeAAAA = "AAAA"
)

// ErrZoneNotFound is returned by ZoneFinder implementations when no
// hosted zone matches the requested DNS name.
var ErrZoneNotFound = errors.New("hosted zone not found")

// RecordChange specifies one record set to unconditionally overwrite
// (update-or-insert).
type RecordChange struct {
	Name  string // Fully-qualified record name.
	TTL   time.Duration
	Type  string // TypeA or TypeAAAA.
	Value string
}

// RecordUpserter defines a DNS record writer. All changes must be
// submitted to the provider as a single atomic batch.
type RecordUpserter interface {
	UpsertRecords(hostedZoneId string, changes []RecordChange) error
}

// ZoneFinder defines a hosted zone lookup by DNS name.
type ZoneFinder interface {
	FindHostedZone(dnsName string) (string, error)
}

// ZoneManager defines a DNS hosted zone manager. It is used to plugin
// the underlying DNS provider.
type ZoneManager interface {
	RecordUpserter
	ZoneFinder
}
