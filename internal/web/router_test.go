package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehler/cvsite/internal/content"
	"github.com/pkoehler/cvsite/internal/cookie"
	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/mailer"
	"github.com/pkoehler/cvsite/internal/web"
)

// stubSender records submissions instead of mailing them.
type stubSender struct {
	mu   sync.Mutex
	err  error
	msgs []mailer.Message
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *stubSender) sent() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.msgs...)
}

func newTestHandler(t *testing.T, sender mailer.Sender) *web.Handler {
	t.Helper()

	store := content.NewStore(content.EmbeddedSource(), content.DefaultLanguage)

	messages, err := i18n.LoadMessages(web.LocaleFS(), "locales")
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(messages, i18n.WithDefaultLanguage(content.DefaultLanguage))
	require.NoError(t, err)

	tmpl, err := web.ParseTemplates()
	require.NoError(t, err)

	if sender == nil {
		sender = &stubSender{}
	}

	h, err := web.NewHandler(web.Deps{
		Store:      store,
		Translator: tr,
		Detector:   i18n.NewDetector(content.Languages, i18n.WithDefault(content.DefaultLanguage)),
		Cookies:    cookie.New(cookie.Config{Path: "/"}),
		Sender:     sender,
		Templates:  tmpl,
		Sections:   web.DefaultSections(tmpl, tr),
	})
	require.NoError(t, err)
	return h
}

func TestNewHandler_MissingDeps(t *testing.T) {
	t.Parallel()

	_, err := web.NewHandler(web.Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content store")
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := newTestHandler(t, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestRouter_RootRedirectsToDetectedLanguage(t *testing.T) {
	t.Parallel()

	router := newTestHandler(t, nil).Router()

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		wantPath string
	}{
		{
			name:     "no hints falls back to default",
			setup:    func(r *http.Request) {},
			wantPath: "/en/",
		},
		{
			name: "accept-language header",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "de-CH,de;q=0.9,en;q=0.5")
			},
			wantPath: "/de/",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "de")
				r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
			},
			wantPath: "/fr/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantPath, rec.Header().Get("Location"))
		})
	}
}

func TestRouter_LangSwitch(t *testing.T) {
	t.Parallel()

	router := newTestHandler(t, nil).Router()

	t.Run("supported language sets cookie", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lang/fr", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/fr/", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		var found bool
		for _, c := range cookies {
			if c.Name == "lang" {
				found = true
				assert.Equal(t, "fr", c.Value)
			}
		}
		assert.True(t, found, "lang cookie not set")
	})

	t.Run("region variant is normalized", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lang/de-CH", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/de/", rec.Header().Get("Location"))
	})

	t.Run("unsupported language redirects to default with flash", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lang/xx", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/en/", rec.Header().Get("Location"))
		require.NotEmpty(t, rec.Result().Cookies(), "expected flash cookie")

		// Follow the redirect with the flash cookie attached: the page must
		// show the notice once.
		req := httptest.NewRequest(http.MethodGet, "/en/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		rec2 := httptest.NewRecorder()
		router.ServeHTTP(rec2, req)

		assert.Equal(t, http.StatusOK, rec2.Code)
		assert.Contains(t, rec2.Body.String(), "not available in")
	})
}

func TestRouter_StaticWithoutFS(t *testing.T) {
	t.Parallel()

	// Static is optional; without it the route is simply absent.
	router := newTestHandler(t, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_StaticServesEmbeddedAssets(t *testing.T) {
	t.Parallel()

	static, err := web.StaticFS()
	require.NoError(t, err)

	store := content.NewStore(content.EmbeddedSource(), content.DefaultLanguage)
	messages, err := i18n.LoadMessages(web.LocaleFS(), "locales")
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(messages)
	require.NoError(t, err)
	tmpl, err := web.ParseTemplates()
	require.NoError(t, err)

	withStatic, err := web.NewHandler(web.Deps{
		Store:      store,
		Translator: tr,
		Detector:   i18n.NewDetector(content.Languages),
		Cookies:    cookie.New(cookie.Config{Path: "/"}),
		Sender:     &stubSender{},
		Templates:  tmpl,
		Sections:   web.DefaultSections(tmpl, tr),
		Static:     static,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	withStatic.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".carousel")
}
