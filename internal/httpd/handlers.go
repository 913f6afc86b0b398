package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mouessam/localstack-ses-admin/internal/apperr"
	"github.com/mouessam/localstack-ses-admin/internal/app"
	"github.com/mouessam/localstack-ses-admin/internal/email"
	"github.com/mouessam/localstack-ses-admin/internal/mimebuild"
	"github.com/mouessam/localstack-ses-admin/internal/provider"
	"github.com/mouessam/localstack-ses-admin/internal/schema"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleListIdentities(w http.ResponseWriter, r *http.Request) {
	items, err := app.ListIdentities(r.Context(), s.config.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []email.Identity{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleVerifyIdentity(w http.ResponseWriter, r *http.Request) {
	var in email.Identity
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, apperr.Validation("Invalid identity payload"))
		return
	}
	if issues := schema.CheckIdentity(in); len(issues) > 0 {
		writeError(w, r, apperr.Validation(issues[0].Message))
		return
	}

	if err := app.VerifyIdentity(r.Context(), s.config.Email, in.Identity, in.Type); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleDeleteIdentity(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]

	if err := app.DeleteIdentity(r.Context(), s.config.Email, identity); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var in email.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, apperr.Validation("Invalid send payload"))
		return
	}
	if issues := schema.CheckSendEmail(in); len(issues) > 0 {
		writeError(w, r, apperr.Validation(issues[0].Message))
		return
	}

	messageID, err := app.SendEmail(r.Context(), s.config.Email, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"messageId": messageID})
}

func (s *Server) handleSendRaw(w http.ResponseWriter, r *http.Request) {
	fields, attachments, err := s.parseMultipart(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	in := email.SendRawInput{
		From:    fields["from"],
		To:      splitList(fields["to"]),
		Cc:      splitList(fields["cc"]),
		Bcc:     splitList(fields["bcc"]),
		Subject: fields["subject"],
		Text:    fields["text"],
		HTML:    fields["html"],
		Raw:     fields["raw"],
	}
	if issues := schema.CheckSendRaw(in); len(issues) > 0 {
		writeError(w, r, apperr.Validation(issues[0].Message))
		return
	}

	var raw []byte
	if in.Raw != "" {
		raw = []byte(in.Raw)
	} else {
		raw, err = mimebuild.Build(in, attachments)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}

	messageID, err := app.SendRawEmail(r.Context(), s.config.Email, in, raw)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"messageId": messageID})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	q := provider.MessageQuery{
		ID:    r.URL.Query().Get("id"),
		Email: r.URL.Query().Get("email"),
	}

	messages, err := app.ListMessages(r.Context(), s.config.Messages, q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if messages == nil {
		messages = []email.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) handleDeleteMessages(w http.ResponseWriter, r *http.Request) {
	q := provider.MessageQuery{
		ID:    r.URL.Query().Get("id"),
		Email: r.URL.Query().Get("email"),
	}

	if err := app.DeleteMessages(r.Context(), s.config.Messages, q); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
