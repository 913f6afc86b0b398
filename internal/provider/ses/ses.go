// Package ses implements the EmailProvider port against the AWS SES v2 API.
package ses

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
	"github.com/mouessam/localstack-ses-admin/internal/email"
)

// Config holds the configuration for creating an Adapter.
type Config struct {
	// Endpoint overrides the API endpoint, pointing the client at a local
	// emulator. Empty means the SDK default.
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// API is the subset of the SES v2 client the adapter uses.
// Narrowed for testing with mock implementations.
type API interface {
	ListEmailIdentities(ctx context.Context, params *sesv2.ListEmailIdentitiesInput, optFns ...func(*sesv2.Options)) (*sesv2.ListEmailIdentitiesOutput, error)
	CreateEmailIdentity(ctx context.Context, params *sesv2.CreateEmailIdentityInput, optFns ...func(*sesv2.Options)) (*sesv2.CreateEmailIdentityOutput, error)
	DeleteEmailIdentity(ctx context.Context, params *sesv2.DeleteEmailIdentityInput, optFns ...func(*sesv2.Options)) (*sesv2.DeleteEmailIdentityOutput, error)
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Adapter translates the EmailProvider port onto SES v2 API calls.
// Failures are wrapped into a single upstream error kind carrying the
// original message; the adapter never retries.
type Adapter struct {
	client API
}

// New creates an Adapter with a real SES v2 client.
func New(ctx context.Context, cfg Config) (*Adapter, error) {
	var opts []func(*awsconfig.LoadOptions) error

	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, apperr.Upstreamf("failed to load AWS config: %v", err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Adapter{client: client}, nil
}

// NewWithClient creates an Adapter with a custom client, used for testing.
func NewWithClient(client API) *Adapter {
	return &Adapter{client: client}
}

// ListIdentities returns every identity the provider knows, following
// pagination tokens.
func (a *Adapter) ListIdentities(ctx context.Context) ([]email.Identity, error) {
	var (
		identities []email.Identity
		nextToken  *string
	)

	for {
		out, err := a.client.ListEmailIdentities(ctx, &sesv2.ListEmailIdentitiesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, apperr.Upstreamf("ses list identities failed: %v", err)
		}

		for _, info := range out.EmailIdentities {
			name := aws.ToString(info.IdentityName)
			identities = append(identities, email.Identity{
				Identity: name,
				Type:     identityType(name, info.IdentityType),
			})
		}

		if out.NextToken == nil {
			return identities, nil
		}
		nextToken = out.NextToken
	}
}

// VerifyIdentity registers the identity with the provider, which kicks off
// its own verification flow. The provider derives the identity kind itself;
// typ is accepted for port symmetry and validated upstream.
func (a *Adapter) VerifyIdentity(ctx context.Context, identity string, typ email.IdentityType) error {
	_, err := a.client.CreateEmailIdentity(ctx, &sesv2.CreateEmailIdentityInput{
		EmailIdentity: aws.String(identity),
	})
	if err != nil {
		return apperr.Upstreamf("ses verify identity failed: %v", err)
	}
	return nil
}

// DeleteIdentity removes the identity from the provider.
func (a *Adapter) DeleteIdentity(ctx context.Context, identity string) error {
	_, err := a.client.DeleteEmailIdentity(ctx, &sesv2.DeleteEmailIdentityInput{
		EmailIdentity: aws.String(identity),
	})
	if err != nil {
		return apperr.Upstreamf("ses delete identity failed: %v", err)
	}
	return nil
}

// SendEmail sends a structured email using the simple content format.
func (a *Adapter) SendEmail(ctx context.Context, in email.SendEmailInput) (string, error) {
	body := &types.Body{}
	if in.Text != "" {
		body.Text = &types.Content{
			Data:    aws.String(in.Text),
			Charset: aws.String("UTF-8"),
		}
	}
	if in.HTML != "" {
		body.Html = &types.Content{
			Data:    aws.String(in.HTML),
			Charset: aws.String("UTF-8"),
		}
	}

	out, err := a.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(in.From),
		Destination: &types.Destination{
			ToAddresses:  in.To,
			CcAddresses:  in.Cc,
			BccAddresses: in.Bcc,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(in.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: body,
			},
		},
	})
	if err != nil {
		return "", apperr.Upstreamf("ses send email failed: %v", err)
	}

	return aws.ToString(out.MessageId), nil
}

// SendRawEmail sends a complete MIME document. The destination set is
// passed explicitly rather than extracted from the raw headers.
func (a *Adapter) SendRawEmail(ctx context.Context, in email.SendRawInput, raw []byte) (string, error) {
	destinations := make([]string, 0, len(in.To)+len(in.Cc)+len(in.Bcc))
	destinations = append(destinations, in.To...)
	destinations = append(destinations, in.Cc...)
	destinations = append(destinations, in.Bcc...)

	out, err := a.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(in.From),
		Destination: &types.Destination{
			ToAddresses: destinations,
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{
				Data: raw,
			},
		},
	})
	if err != nil {
		return "", apperr.Upstreamf("ses send raw email failed: %v", err)
	}

	return aws.ToString(out.MessageId), nil
}

// identityType maps the provider's identity kind onto the port's enum,
// falling back to inference from the presence of an "@" when the provider
// does not report one.
func identityType(name string, typ types.IdentityType) email.IdentityType {
	switch typ {
	case types.IdentityTypeEmailAddress:
		return email.IdentityTypeEmail
	case types.IdentityTypeDomain, types.IdentityTypeManagedDomain:
		return email.IdentityTypeDomain
	}
	if strings.Contains(name, "@") {
		return email.IdentityTypeEmail
	}
	return email.IdentityTypeDomain
}
