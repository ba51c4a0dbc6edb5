package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/logger"
	"github.com/pkoehler/cvsite/internal/vcard"
)

// handleVCard serves the contact block as a downloadable vCard. Contact
// data is language independent, so the default-language document is used.
func (h *Handler) handleVCard(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context(), content.DefaultLanguage)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	card, err := vcard.Build(doc.Contact)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "vcard build failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="contact.vcf"`)
	_, _ = fmt.Fprint(w, card)
}

// handleVCardQR serves the vCard as a QR code PNG.
func (h *Handler) handleVCardQR(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context(), content.DefaultLanguage)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		size, _ = strconv.Atoi(s)
	}

	png, err := vcard.QRPNG(doc.Contact, size)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "vcard qr failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}
