// Package cookie manages the site's two cookies: the language preference
// and one-shot flash notices. Flash values are JSON encoded as base64 and
// deleted on first read; nothing stored is sensitive, so no signing or
// encryption is involved.
package cookie

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const flashPrefix = "__flash_"

// ErrNotFound is returned when the requested cookie is absent.
var ErrNotFound = errors.New("cookie: not found")

// Config holds cookie defaults, loadable from the environment.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"31536000"` // one year
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
}

// Manager reads and writes cookies with shared defaults.
type Manager struct {
	cfg Config
}

// New returns a Manager with the given defaults. Empty paths become "/".
func New(cfg Config) *Manager {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	return &Manager{cfg: cfg}
}

// Set writes a cookie with the manager's defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.cfg.Path,
		Domain:   m.cfg.Domain,
		MaxAge:   m.cfg.MaxAge,
		Secure:   m.cfg.Secure,
		HttpOnly: m.cfg.HttpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns the named cookie's value or ErrNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.cfg.Path,
		Domain:   m.cfg.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.cfg.Secure,
		HttpOnly: m.cfg.HttpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetFlash stores a value to be read exactly once on a subsequent request.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashPrefix + key,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     m.cfg.Path,
		Domain:   m.cfg.Domain,
		MaxAge:   300, // flashes are short-lived by nature
		Secure:   m.cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetFlash reads a flash value into dest and deletes the cookie so the
// notice is shown at most once.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	name := flashPrefix + key

	raw, err := m.Get(r, name)
	if err != nil {
		return err
	}
	m.Delete(w, name)

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("decode flash: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal flash: %w", err)
	}
	return nil
}
