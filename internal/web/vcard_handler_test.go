package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVCard(t *testing.T) {
	t.Parallel()

	router := newTestHandler(t, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vcard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/vcard")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "contact.vcf")

	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCARD")
	assert.Contains(t, body, "VERSION:4.0")
	assert.Contains(t, body, "FN:Pascal Koehler")
	assert.Contains(t, body, "END:VCARD")
}

func TestHandleVCardQR(t *testing.T) {
	t.Parallel()

	router := newTestHandler(t, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vcard/qr.png?size=256", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

	body := rec.Body.Bytes()
	require.Greater(t, len(body), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}
