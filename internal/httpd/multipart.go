package httpd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
	"github.com/mouessam/localstack-ses-admin/internal/email"
)

// maxFieldBytes caps a single non-file form field.
const maxFieldBytes = 1 << 20

// parseMultipart streams the request's multipart parts, collecting text
// fields and buffering file parts in memory. A file part exceeding the
// configured ceiling, or any stream error, aborts the whole request.
func (s *Server) parseMultipart(r *http.Request) (map[string]string, []email.Attachment, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, nil, apperr.Validation("Expected multipart/form-data")
	}

	fields := make(map[string]string)
	var attachments []email.Attachment

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, apperr.Validation("Malformed multipart body")
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
			if err != nil {
				return nil, nil, apperr.Validation("Malformed multipart body")
			}
			fields[part.FormName()] = string(value)
			continue
		}

		var buf bytes.Buffer
		n, err := io.Copy(&buf, io.LimitReader(part, s.config.MaxUploadSize+1))
		if err != nil {
			return nil, nil, apperr.Validation("Malformed multipart body")
		}
		if n > s.config.MaxUploadSize {
			return nil, nil, apperr.Validation("Attachment too large")
		}

		attachments = append(attachments, email.Attachment{
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Content:     buf.Bytes(),
		})
	}

	return fields, attachments, nil
}

// splitList maps a comma-separated form field into a list, trimming
// whitespace and dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
