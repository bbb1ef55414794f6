package awscreds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func fromSecretsManager(ctx context.Context, secretId string,
	logger log.DebugLogger) (*StaticCredentials, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if parsedArn, err := arn.Parse(secretId); err == nil {
		optFns = append(optFns, awsconfig.WithRegion(parsedArn.Region))
	} else {
		optFns = append(optFns, awsconfig.WithEC2IMDSRegion())
	}
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration: %s", err)
	}
	secretsClient := secretsmanager.NewFromConfig(awsConfig)
	input := secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretId),
	}
	output, err := secretsClient.GetSecretValue(ctx, &input)
	if err != nil {
		return nil,
			fmt.Errorf("error calling secretsmanager:GetSecretValue: %s", err)
	}
	if output.SecretString == nil {
		return nil, errors.New("no SecretString in secret")
	}
	var secrets map[string]string
	if err := json.Unmarshal([]byte(*output.SecretString),
		&secrets); err != nil {
		return nil, fmt.Errorf("error unmarshaling secret: %s", err)
	}
	staticCredentials := &StaticCredentials{
		AccessKeyId:     secrets["access_key_id"],
		SecretAccessKey: secrets["secret_access_key"],
		SessionToken:    secrets["session_token"],
	}
	if value := secrets["expires_after"]; value != "" {
		expires, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("error parsing expires_after: %s", err)
		}
		staticCredentials.ExpiresAfter = &expires
	}
	if err := staticCredentials.check(); err != nil {
		return nil, err
	}
	logger.Debugf(1, "fetched AWS credentials from secret: %s\n", secretId)
	return staticCredentials, nil
}
