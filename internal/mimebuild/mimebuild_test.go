package mimebuild

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/emersion/go-message/mail"

	"github.com/mouessam/localstack-ses-admin/internal/email"
)

func TestBuild_TextOnly(t *testing.T) {
	t.Parallel()

	in := email.SendRawInput{
		From:    "sender@example.com",
		To:      []string{"to@example.com"},
		Subject: "Hello",
		Text:    "Plain text",
	}

	raw, err := Build(in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(raw), "Subject: Hello") {
		t.Error("raw message missing Subject header")
	}
	if !strings.Contains(string(raw), "Plain text") {
		t.Error("raw message missing text body")
	}
}

func TestBuild_HeadersRoundTrip(t *testing.T) {
	t.Parallel()

	in := email.SendRawInput{
		From:    "sender@example.com",
		To:      []string{"one@example.com", "two@example.com"},
		Cc:      []string{"cc@example.com"},
		Subject: "Round trip",
		HTML:    "<p>Hi</p>",
	}

	raw, err := Build(in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to parse built message: %v", err)
	}

	subject, err := mr.Header.Subject()
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	if subject != "Round trip" {
		t.Errorf("subject: got %q, want %q", subject, "Round trip")
	}

	to, err := mr.Header.AddressList("To")
	if err != nil {
		t.Fatalf("to: %v", err)
	}
	if len(to) != 2 || to[0].Address != "one@example.com" || to[1].Address != "two@example.com" {
		t.Errorf("to: got %v, want the two recipients in order", to)
	}

	cc, err := mr.Header.AddressList("Cc")
	if err != nil {
		t.Fatalf("cc: %v", err)
	}
	if len(cc) != 1 || cc[0].Address != "cc@example.com" {
		t.Errorf("cc: got %v, want [cc@example.com]", cc)
	}
}

func TestBuild_WithAttachments(t *testing.T) {
	t.Parallel()

	in := email.SendRawInput{
		From:    "sender@example.com",
		To:      []string{"to@example.com"},
		Subject: "With files",
		Text:    "See attached",
	}
	atts := []email.Attachment{
		{Filename: "a.txt", ContentType: "text/plain", Content: []byte("first file")},
		{Filename: "b.bin", Content: []byte{0x00, 0x01, 0x02}},
	}

	raw, err := Build(in, atts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to parse built message: %v", err)
	}

	var gotText string
	var gotFiles []string
	var gotContents [][]byte
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			body, err := io.ReadAll(p.Body)
			if err != nil {
				t.Fatalf("read inline: %v", err)
			}
			gotText = string(body)
		case *mail.AttachmentHeader:
			filename, err := h.Filename()
			if err != nil {
				t.Fatalf("filename: %v", err)
			}
			body, err := io.ReadAll(p.Body)
			if err != nil {
				t.Fatalf("read attachment: %v", err)
			}
			gotFiles = append(gotFiles, filename)
			gotContents = append(gotContents, body)
		}
	}

	if gotText != "See attached" {
		t.Errorf("text body: got %q, want %q", gotText, "See attached")
	}
	// attachment order is preserved as given
	if len(gotFiles) != 2 || gotFiles[0] != "a.txt" || gotFiles[1] != "b.bin" {
		t.Errorf("attachments: got %v, want [a.txt b.bin]", gotFiles)
	}
	if len(gotContents) == 2 {
		if string(gotContents[0]) != "first file" {
			t.Errorf("first attachment: got %q, want %q", gotContents[0], "first file")
		}
		if !bytes.Equal(gotContents[1], []byte{0x00, 0x01, 0x02}) {
			t.Errorf("second attachment: got %v, want binary content preserved", gotContents[1])
		}
	}
}

func TestBuild_TextAndHTMLAlternative(t *testing.T) {
	t.Parallel()

	in := email.SendRawInput{
		From:    "sender@example.com",
		To:      []string{"to@example.com"},
		Subject: "Both bodies",
		Text:    "plain version",
		HTML:    "<p>rich version</p>",
	}

	raw, err := Build(in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to parse built message: %v", err)
	}

	var bodies []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		if _, ok := p.Header.(*mail.InlineHeader); ok {
			body, err := io.ReadAll(p.Body)
			if err != nil {
				t.Fatalf("read part: %v", err)
			}
			bodies = append(bodies, string(body))
		}
	}

	if len(bodies) != 2 {
		t.Fatalf("inline parts: got %d, want 2", len(bodies))
	}
	if bodies[0] != "plain version" {
		t.Errorf("text part: got %q, want %q", bodies[0], "plain version")
	}
	if bodies[1] != "<p>rich version</p>" {
		t.Errorf("html part: got %q, want %q", bodies[1], "<p>rich version</p>")
	}
}
