package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/logger"
	"github.com/pkoehler/cvsite/internal/mailer"
)

// contactResult feeds the fragment replacing the form's status area.
type contactResult struct {
	OK      bool
	Message string
}

// handleContact validates the form and hands the submission to the mailer.
// The response is always the localized status fragment; a failed send never
// bubbles past a visible notice.
func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())

	if err := r.ParseForm(); err != nil {
		h.respondContact(w, r, contactResult{Message: h.tr.T(lang, "contact.error")})
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	// Honeypot: bots fill every field. Report success, send nothing.
	if r.PostFormValue("website") != "" {
		h.respondContact(w, r, contactResult{OK: true, Message: h.tr.T(lang, "contact.success")})
		return
	}

	if name == "" || email == "" || message == "" {
		h.respondContact(w, r, contactResult{Message: h.tr.T(lang, "contact.missing_fields")})
		return
	}

	submissionID := uuid.NewString()
	msg := mailer.Message{
		SubmissionID: submissionID,
		ReplyTo:      email,
		Subject:      fmt.Sprintf("Website contact from %s", name),
		BodyHTML:     h.contactBody(name, email, message),
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.logger.ErrorContext(r.Context(), "contact send failed",
			logger.SubmissionID(submissionID), logger.Error(err))
		h.respondContact(w, r, contactResult{Message: h.tr.T(lang, "contact.error")})
		return
	}

	h.logger.InfoContext(r.Context(), "contact submission delivered",
		logger.SubmissionID(submissionID))
	h.respondContact(w, r, contactResult{OK: true, Message: h.tr.T(lang, "contact.success")})
}

// contactBody renders the notification mail. Visitor input is escaped; the
// mail is HTML only because it goes to the site owner, not the visitor.
func (h *Handler) contactBody(name, email, message string) string {
	esc := template.HTMLEscapeString
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", esc(name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", esc(email))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(esc(message), "\n", "<br>"))
	return b.String()
}

// respondContact patches the status fragment over SSE for Datastar
// submissions and falls back to a plain fragment for no-script posts.
func (h *Handler) respondContact(w http.ResponseWriter, r *http.Request, res contactResult) {
	var sb strings.Builder
	if err := h.tmpl.ExecuteTemplate(&sb, "fragment_contact_result.html", res); err != nil {
		h.logger.Error("contact fragment render failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if isDatastar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElements(sb.String()); err != nil {
			h.logger.Error("contact fragment patch failed", logger.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(sb.String()))
}

// isDatastar reports whether the request came from the Datastar runtime.
func isDatastar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has("datastar")
}
