package aws

import (
	"context"

	"haru-weather/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// NewAwsConfig loads the SDK configuration, honoring the optional LocalStack
// endpoint and static credentials from the application properties. With
// neither configured, the default credential chain applies.
func NewAwsConfig(ctx context.Context) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
		options = append(options, config.WithBaseEndpoint(endpoint))
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		if secretKey := resource.GetString("app.cloud.aws-secret-access-key"); secretKey != "" {
			options = append(options, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			))
		}
	}

	return config.LoadDefaultConfig(ctx, options...)
}
