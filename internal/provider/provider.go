// Package provider defines the ports that decouple the application from
// the concrete email provider and message-capture backends.
package provider

import (
	"context"

	"github.com/mouessam/localstack-ses-admin/internal/email"
)

// EmailProvider is the capability interface for the email-sending provider.
// Any concrete backend (real provider, local emulator, in-memory test
// double) must implement the full method set.
type EmailProvider interface {
	// ListIdentities returns every sender identity known to the provider.
	ListIdentities(ctx context.Context) ([]email.Identity, error)

	// VerifyIdentity registers an identity and triggers the provider's
	// verification flow.
	VerifyIdentity(ctx context.Context, identity string, typ email.IdentityType) error

	// DeleteIdentity removes a sender identity from the provider.
	DeleteIdentity(ctx context.Context, identity string) error

	// SendEmail sends a structured email and returns the provider's
	// message id.
	SendEmail(ctx context.Context, in email.SendEmailInput) (string, error)

	// SendRawEmail sends a complete MIME document and returns the
	// provider's message id.
	SendRawEmail(ctx context.Context, in email.SendRawInput, raw []byte) (string, error)
}

// MessageQuery filters captured messages by id or recipient address.
// Zero values mean no filter.
type MessageQuery struct {
	ID    string
	Email string
}

// MessageStore is the capability interface for the local message-capture
// service.
type MessageStore interface {
	// ListMessages returns captured messages matching the query.
	ListMessages(ctx context.Context, q MessageQuery) ([]email.Message, error)

	// DeleteMessages removes captured messages matching the query.
	// An empty query deletes everything and is safe to repeat.
	DeleteMessages(ctx context.Context, q MessageQuery) error
}
