/*
Package awscreds provides AWS credential material loaded from
configuration data or from AWS Secrets Manager. The formatted
representations redact everything except the expiry time, so
credentials may be safely passed to loggers.
*/
package awscreds

import (
	"context"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

// ProviderName is recorded in credential values fetched through this
// package.
const ProviderName = "ConfigFileProvider"

// StaticCredentials holds AWS credential material, possibly
// time-limited.
type StaticCredentials struct {
	AccessKeyId     string     `yaml:"access_key_id"`
	SecretAccessKey string     `yaml:"secret_access_key"`
	SessionToken    string     `yaml:"session_token,omitempty"`
	ExpiresAfter    *time.Time `yaml:"expires_after,omitempty"`
}

// FromSecretsManager fetches credentials from an AWS Secrets Manager
// secret. The secret value must be a JSON object with keys
// access_key_id, secret_access_key and optionally session_token and
// expires_after (RFC 3339). The region is taken from the secret ARN
// if secretId is an ARN, else from the EC2 instance metadata.
// The logger is used for logging messages.
func FromSecretsManager(ctx context.Context, secretId string,
	logger log.DebugLogger) (*StaticCredentials, error) {
	return fromSecretsManager(ctx, secretId, logger)
}

// CallerIdentity calls sts:GetCallerIdentity using the credentials
// and returns the ARN of the caller. It may be used to verify
// credentials before their first real use.
func (sc *StaticCredentials) CallerIdentity(ctx context.Context,
	region string) (string, error) {
	return sc.callerIdentity(ctx, region)
}

// Check returns an error if mandatory fields are missing or the
// credentials have already expired.
func (sc *StaticCredentials) Check() error {
	return sc.check()
}

// GoString implements fmt.GoStringer. Secret fields are redacted.
func (sc *StaticCredentials) GoString() string {
	return sc.redactedString()
}

// IsExpired implements the credentials.Provider interface.
func (sc *StaticCredentials) IsExpired() bool {
	return sc.isExpired()
}

// NewCredentials returns a *credentials.Credentials wrapping the
// static credential material, suitable for creating an AWS session.
func (sc *StaticCredentials) NewCredentials() *credentials.Credentials {
	return credentials.NewCredentials(sc)
}

// Retrieve implements the credentials.Provider interface.
func (sc *StaticCredentials) Retrieve() (credentials.Value, error) {
	return sc.retrieve()
}

// String implements fmt.Stringer. Secret fields are redacted.
func (sc *StaticCredentials) String() string {
	return sc.redactedString()
}
