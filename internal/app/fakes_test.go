package app

import (
	"context"

	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

// fakeEmailProvider records calls and returns canned results.
type fakeEmailProvider struct {
	identities []email.Identity
	messageID  string
	err        error

	verifyCalls []struct {
		identity string
		typ      email.IdentityType
	}
	deleteCalls []string
	sendCalls   []email.SendEmailInput
	rawCalls    []struct {
		in  email.SendRawInput
		raw []byte
	}
}

func (f *fakeEmailProvider) ListIdentities(ctx context.Context) ([]email.Identity, error) {
	return f.identities, f.err
}

func (f *fakeEmailProvider) VerifyIdentity(ctx context.Context, identity string, typ email.IdentityType) error {
	f.verifyCalls = append(f.verifyCalls, struct {
		identity string
		typ      email.IdentityType
	}{identity, typ})
	return f.err
}

func (f *fakeEmailProvider) DeleteIdentity(ctx context.Context, identity string) error {
	f.deleteCalls = append(f.deleteCalls, identity)
	return f.err
}

func (f *fakeEmailProvider) SendEmail(ctx context.Context, in email.SendEmailInput) (string, error) {
	f.sendCalls = append(f.sendCalls, in)
	return f.messageID, f.err
}

func (f *fakeEmailProvider) SendRawEmail(ctx context.Context, in email.SendRawInput, raw []byte) (string, error) {
	f.rawCalls = append(f.rawCalls, struct {
		in  email.SendRawInput
		raw []byte
	}{in, raw})
	return f.messageID, f.err
}

// fakeMessageStore records queries and returns canned results.
type fakeMessageStore struct {
	messages []email.Message
	err      error

	listCalls   []provider.MessageQuery
	deleteCalls []provider.MessageQuery
}

func (f *fakeMessageStore) ListMessages(ctx context.Context, q provider.MessageQuery) ([]email.Message, error) {
	f.listCalls = append(f.listCalls, q)
	return f.messages, f.err
}

func (f *fakeMessageStore) DeleteMessages(ctx context.Context, q provider.MessageQuery) error {
	f.deleteCalls = append(f.deleteCalls, q)
	return f.err
}
