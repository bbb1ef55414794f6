package awscreds

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
)

const redacted = "********"

func (sc *StaticCredentials) check() error {
	if sc.AccessKeyId == "" {
		return errors.New("no access_key_id specified")
	}
	if sc.SecretAccessKey == "" {
		return errors.New("no secret_access_key specified")
	}
	if sc.isExpired() {
		return fmt.Errorf("credentials expired at: %s",
			sc.ExpiresAfter.Format(time.RFC3339))
	}
	return nil
}

func (sc *StaticCredentials) isExpired() bool {
	if sc.ExpiresAfter == nil {
		return false
	}
	return time.Until(*sc.ExpiresAfter) <= 0
}

func (sc *StaticCredentials) redactedString() string {
	expires := "<none>"
	if sc.ExpiresAfter != nil {
		expires = sc.ExpiresAfter.Format(time.RFC3339)
	}
	return fmt.Sprintf(
		"{access_key_id: %s, secret_access_key: %s, session_token: %s, expires_after: %s}",
		redacted, redacted, redacted, expires)
}

func (sc *StaticCredentials) retrieve() (credentials.Value, error) {
	if err := sc.check(); err != nil {
		return credentials.Value{}, err
	}
	return credentials.Value{
		AccessKeyID:     sc.AccessKeyId,
		ProviderName:    ProviderName,
		SecretAccessKey: sc.SecretAccessKey,
		SessionToken:    sc.SessionToken,
	}, nil
}
