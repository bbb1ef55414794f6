package route53

import (
	"testing"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/dns"
	"github.com/aws/aws-sdk-go/aws"
)

func TestMakeFqdn(t *testing.T) {
	if fqdn := makeFqdn("home.example.com"); fqdn != "home.example.com." {
		t.Errorf("unexpected fqdn: %s", fqdn)
	}
	if fqdn := makeFqdn("home.example.com."); fqdn != "home.example.com." {
		t.Errorf("unexpected fqdn: %s", fqdn)
	}
}

func TestMakeChangeBatch(t *testing.T) {
	changeBatch := makeChangeBatch([]dns.RecordChange{
		{
			Name:  "home.example.com",
			TTL:   5 * time.Minute,
			Type:  dns.TypeA,
			Value: "203.0.113.7",
		},
		{
			Name:  "home.example.com",
			TTL:   5 * time.Minute,
			Type:  dns.TypeAAAA,
			Value: "2001:db8::1",
		},
	})
	if numChanges := len(changeBatch.Changes); numChanges != 2 {
		t.Fatalf("unexpected number of changes: %d", numChanges)
	}
	for _, change := range changeBatch.Changes {
		if action := aws.StringValue(change.Action); action != "UPSERT" {
			t.Errorf("unexpected action: %s", action)
		}
		recordSet := change.ResourceRecordSet
		if name := aws.StringValue(recordSet.Name); name != "home.example.com." {
			t.Errorf("unexpected record name: %s", name)
		}
		if ttl := aws.Int64Value(recordSet.TTL); ttl != 300 {
			t.Errorf("unexpected TTL: %d", ttl)
		}
		if numRecords := len(recordSet.ResourceRecords); numRecords != 1 {
			t.Errorf("unexpected number of records: %d", numRecords)
		}
	}
	if recordType := aws.StringValue(
		changeBatch.Changes[0].ResourceRecordSet.Type); recordType != "A" {
		t.Errorf("unexpected record type: %s", recordType)
	}
	if value := aws.StringValue(
		changeBatch.Changes[1].ResourceRecordSet.ResourceRecords[0].Value); value != "2001:db8::1" {
		t.Errorf("unexpected record value: %s", value)
	}
}
