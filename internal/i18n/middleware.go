package i18n

import "net/http"

// Middleware resolves the request language through the detector and stores
// it in the request context for handlers and the translator.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := d.Detect(r)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
