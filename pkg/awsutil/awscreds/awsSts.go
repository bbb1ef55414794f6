package awscreds

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	v2credentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

func (sc *StaticCredentials) callerIdentity(ctx context.Context,
	region string) (string, error) {
	if err := sc.check(); err != nil {
		return "", err
	}
	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithCredentialsProvider(
			v2credentials.NewStaticCredentialsProvider(sc.AccessKeyId,
				sc.SecretAccessKey, sc.SessionToken)),
	}
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return "", fmt.Errorf("error loading AWS configuration: %s", err)
	}
	stsClient := sts.NewFromConfig(awsConfig)
	idOutput, err := stsClient.GetCallerIdentity(ctx,
		&sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error calling sts:GetCallerIdentity: %s", err)
	}
	if idOutput.Arn == nil {
		return "", errors.New("no ARN in sts:GetCallerIdentity response")
	}
	return *idOutput.Arn, nil
}
