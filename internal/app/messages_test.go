package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
)

func TestListMessages_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []email.Message{
		{ID: "m-1", Subject: "hello"},
		{ID: "m-2", Subject: "world"},
	}
	s := &fakeMessageStore{messages: want}
	q := provider.MessageQuery{Email: "to@example.com"}

	got, err := ListMessages(context.Background(), s, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("messages: got %v, want %v", got, want)
	}
	if len(s.listCalls) != 1 || s.listCalls[0] != q {
		t.Errorf("query: got %v, want %v", s.listCalls, q)
	}
}

func TestListMessages_EmptyRoundTrip(t *testing.T) {
	t.Parallel()

	s := &fakeMessageStore{messages: []email.Message{}}

	got, err := ListMessages(context.Background(), s, provider.MessageQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []email.Message{}) {
		t.Errorf("messages: got %v, want empty slice", got)
	}
}

func TestDeleteMessages_ForwardsQuery(t *testing.T) {
	t.Parallel()

	s := &fakeMessageStore{}
	q := provider.MessageQuery{ID: "m-1"}

	if err := DeleteMessages(context.Background(), s, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.deleteCalls) != 1 || s.deleteCalls[0] != q {
		t.Errorf("query: got %v, want %v", s.deleteCalls, q)
	}
}

func TestDeleteMessages_ErrorPropagates(t *testing.T) {
	t.Parallel()

	want := errors.New("capture store unreachable")
	s := &fakeMessageStore{err: want}

	if err := DeleteMessages(context.Background(), s, provider.MessageQuery{}); !errors.Is(err, want) {
		t.Errorf("error: got %v, want %v", err, want)
	}
}
