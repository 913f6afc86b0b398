// Package email defines the core data model shared by the HTTP layer,
// the application use-cases, and the provider adapters.
package email

import "encoding/json"

// IdentityType distinguishes verified sender email addresses from domains.
type IdentityType string

const (
	IdentityTypeEmail  IdentityType = "email"
	IdentityTypeDomain IdentityType = "domain"
)

// Identity is a sender identity registered with the email provider.
// The provider is the source of truth; nothing is persisted locally.
type Identity struct {
	Identity string       `json:"identity" validate:"required,min=3"`
	Type     IdentityType `json:"type" validate:"required,oneof=email domain"`
}

// SendEmailInput is a structured outbound email. At least one of Text or
// HTML must be present; that rule is enforced by the schema package.
type SendEmailInput struct {
	From    string   `json:"from" validate:"required,min=3"`
	To      []string `json:"to" validate:"required,min=1,dive,min=3"`
	Cc      []string `json:"cc,omitempty" validate:"omitempty,dive,min=3"`
	Bcc     []string `json:"bcc,omitempty" validate:"omitempty,dive,min=3"`
	Subject string   `json:"subject" validate:"required,min=1"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

// SendRawInput is an outbound email where the caller may supply a complete
// MIME document. When Raw is empty, the message is synthesized from
// Text/HTML and the request's attachments.
type SendRawInput struct {
	From    string   `json:"from" validate:"required,min=3"`
	To      []string `json:"to" validate:"required,min=1,dive,min=3"`
	Cc      []string `json:"cc,omitempty" validate:"omitempty,dive,min=3"`
	Bcc     []string `json:"bcc,omitempty" validate:"omitempty,dive,min=3"`
	Subject string   `json:"subject" validate:"required,min=1"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
	Raw     string   `json:"raw,omitempty"`
}

// Attachment represents a file attached to a raw email. It exists only for
// the duration of the request that carries it.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a captured message from the mail-capture endpoint. The capture
// format mixes field naming conventions (e.g. both "Subject" and "subject"),
// so unknown fields are preserved verbatim in Extra and reconciled at the
// rendering boundary, never canonicalized here.
type Message struct {
	ID        string
	To        []string
	From      string
	Subject   string
	Body      string
	Timestamp string

	// Extra holds every upstream field that did not decode into a known
	// field, keyed by its original name.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes the known lowercase fields and keeps everything
// else, including fields that fail to decode, in Extra.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, dst any) {
		v, ok := raw[key]
		if !ok {
			return
		}
		if err := json.Unmarshal(v, dst); err == nil {
			delete(raw, key)
		}
	}

	take("id", &m.ID)
	take("to", &m.To)
	take("from", &m.From)
	take("subject", &m.Subject)
	take("body", &m.Body)
	take("timestamp", &m.Timestamp)

	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

// MarshalJSON writes the known fields (when set) merged with the preserved
// upstream fields.
func (m Message) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+6)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.ID != "" {
		out["id"] = m.ID
	}
	if len(m.To) > 0 {
		out["to"] = m.To
	}
	if m.From != "" {
		out["from"] = m.From
	}
	if m.Subject != "" {
		out["subject"] = m.Subject
	}
	if m.Body != "" {
		out["body"] = m.Body
	}
	if m.Timestamp != "" {
		out["timestamp"] = m.Timestamp
	}
	return json.Marshal(out)
}
