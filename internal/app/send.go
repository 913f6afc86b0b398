package app

import (
	"context"

	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// SendEmail sends a structured email and returns the provider message id.
func SendEmail(ctx context.Context, p provider.EmailProvider, in email.SendEmailInput) (string, error) {
	return p.SendEmail(ctx, in)
}

// SendRawEmail sends a complete MIME document and returns the provider
// message id.
func SendRawEmail(ctx context.Context, p provider.EmailProvider, in email.SendRawInput, raw []byte) (string, error) {
	return p.SendRawEmail(ctx, in, raw)
}
