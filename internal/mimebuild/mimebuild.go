// Package mimebuild composes a raw MIME message from structured send
// fields and in-memory attachments. It is used by the raw-send endpoint
// when the caller does not supply a complete MIME document.
package mimebuild

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emersion/go-message/mail"

	"github.com/mouessam/localstack-ses-admin/internal/email"
)

// Build composes a MIME message from the given input. Attachment order is
// preserved as given. Composition errors propagate verbatim; there is no
// local recovery.
func Build(in email.SendRawInput, atts []email.Attachment) ([]byte, error) {
	var h mail.Header
	h.SetAddressList("From", addressList([]string{in.From}))
	h.SetAddressList("To", addressList(in.To))
	if len(in.Cc) > 0 {
		h.SetAddressList("Cc", addressList(in.Cc))
	}
	if len(in.Bcc) > 0 {
		h.SetAddressList("Bcc", addressList(in.Bcc))
	}
	h.SetSubject(in.Subject)

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create mime writer: %w", err)
	}

	if in.Text != "" || in.HTML != "" {
		iw, err := mw.CreateInline()
		if err != nil {
			return nil, fmt.Errorf("failed to create inline writer: %w", err)
		}
		if in.Text != "" {
			if err := writeInlinePart(iw, "text/plain", in.Text); err != nil {
				return nil, err
			}
		}
		if in.HTML != "" {
			if err := writeInlinePart(iw, "text/html", in.HTML); err != nil {
				return nil, err
			}
		}
		if err := iw.Close(); err != nil {
			return nil, fmt.Errorf("failed to close inline writer: %w", err)
		}
	}

	for _, att := range atts {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		var ah mail.AttachmentHeader
		ah.SetContentType(contentType, nil)
		ah.SetFilename(att.Filename)

		aw, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := aw.Write(att.Content); err != nil {
			return nil, fmt.Errorf("failed to write attachment: %w", err)
		}
		if err := aw.Close(); err != nil {
			return nil, fmt.Errorf("failed to close attachment part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close mime writer: %w", err)
	}

	return buf.Bytes(), nil
}

func writeInlinePart(iw *mail.InlineWriter, mediaType, body string) error {
	var th mail.InlineHeader
	th.SetContentType(mediaType, map[string]string{"charset": "utf-8"})

	pw, err := iw.CreatePart(th)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", mediaType, err)
	}
	if _, err := io.WriteString(pw, body); err != nil {
		return fmt.Errorf("failed to write %s part: %w", mediaType, err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close %s part: %w", mediaType, err)
	}
	return nil
}

func addressList(values []string) []*mail.Address {
	addrs := make([]*mail.Address, 0, len(values))
	for _, v := range values {
		addrs = append(addrs, &mail.Address{Address: v})
	}
	return addrs
}
