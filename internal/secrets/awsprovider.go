package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"drivesort/internal/config"
)

// secretsAPI is the slice of the Secrets Manager client this package uses.
// Kept minimal so tests can stub it without network access.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// awsProvider implements Provider on top of AWS Secrets Manager.
// It is safe for concurrent use by multiple goroutines.
type awsProvider struct {
	client secretsAPI
}

// NewAWS creates a Secrets Manager backed Provider addressed at the
// configured region. It only builds the client; no secret is fetched until
// Fetch is called.
func NewAWS(ctx context.Context, cfg config.AWSConfig) (Provider, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("aws region is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrCredentialRetrieval, err)
	}

	return &awsProvider{client: secretsmanager.NewFromConfig(awsCfg)}, nil
}

var _ Provider = (*awsProvider)(nil)

// Fetch retrieves the secret string and parses it into a ServiceAccountKey.
func (p *awsProvider) Fetch(ctx context.Context, secretName string) (*ServiceAccountKey, error) {
	if secretName == "" {
		return nil, fmt.Errorf("%w: secret name is empty", ErrCredentialRetrieval)
	}

	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get secret %q: %v", ErrCredentialRetrieval, secretName, err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return nil, fmt.Errorf("%w: secret %q has no string payload", ErrCredentialRetrieval, secretName)
	}

	return parseKey(*out.SecretString)
}
