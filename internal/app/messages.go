package app

import (
	"context"

	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// ListMessages returns captured messages matching the query.
func ListMessages(ctx context.Context, s provider.MessageStore, q provider.MessageQuery) ([]email.Message, error) {
	return s.ListMessages(ctx, q)
}

// DeleteMessages removes captured messages matching the query.
func DeleteMessages(ctx context.Context, s provider.MessageStore, q provider.MessageQuery) error {
	return s.DeleteMessages(ctx, q)
}
