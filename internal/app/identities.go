// Package app holds the application use-cases. Each one forwards to a port
// method unchanged; the indirection exists so every action has an
// independently testable seam without an HTTP harness.
package app

import (
	"context"

	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// ListIdentities returns the provider's sender identities.
func ListIdentities(ctx context.Context, p provider.EmailProvider) ([]email.Identity, error) {
	return p.ListIdentities(ctx)
}

// VerifyIdentity registers an identity for provider verification.
func VerifyIdentity(ctx context.Context, p provider.EmailProvider, identity string, typ email.IdentityType) error {
	return p.VerifyIdentity(ctx, identity, typ)
}

// DeleteIdentity removes a sender identity.
func DeleteIdentity(ctx context.Context, p provider.EmailProvider, identity string) error {
	return p.DeleteIdentity(ctx, identity)
}
