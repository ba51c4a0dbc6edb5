package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/pkoehler/cvsite/internal/carousel"
	"github.com/pkoehler/cvsite/internal/i18n"
	"github.com/pkoehler/cvsite/internal/logger"
)

// carouselSignal mirrors the per-section signals the page keeps: the
// leftmost visible item, the viewport width, and the items-per-view count
// the strip is currently laid out with.
type carouselSignal struct {
	Index   int `json:"index"`
	Width   int `json:"width"`
	PerView int `json:"perView"`
}

type carouselSignals struct {
	Carousels map[string]carouselSignal `json:"carousels"`
}

// handleCarousel runs one navigation step for a section's carousel and
// patches the updated window back into the page signals. The browser side
// is declarative: the strip transform and button disabled states are bound
// to these signals, so no markup is exchanged.
func (h *Handler) handleCarousel(w http.ResponseWriter, r *http.Request) {
	lang := i18n.GetLocale(r.Context())

	section := chi.URLParam(r, "section")
	renderer, ok := h.byID[section]
	if !ok {
		http.NotFound(w, r)
		return
	}

	doc, err := h.store.Load(r.Context(), lang)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "carousel content unavailable",
			logger.Lang(lang), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	itemCount := renderer.ItemCount(doc)
	if itemCount == 0 {
		http.NotFound(w, r)
		return
	}

	var signals carouselSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sig := signals.Carousels[section]

	state := carousel.State{
		ItemCount:    itemCount,
		ItemsPerView: sig.PerView,
		CurrentIndex: sig.Index,
	}

	switch chi.URLParam(r, "action") {
	case "next":
		state.ItemsPerView = carousel.ItemsPerView(sig.Width)
		state = state.Advance()
	case "prev":
		state.ItemsPerView = carousel.ItemsPerView(sig.Width)
		state = state.Retreat()
	case "resize":
		state = state.OnResize(sig.Width)
	default:
		http.NotFound(w, r)
		return
	}

	h.patchCarousel(w, r, section, state)
}

// patchCarousel sends the window state for one section as a Datastar signal
// patch.
func (h *Handler) patchCarousel(w http.ResponseWriter, r *http.Request, section string, state carousel.State) {
	controls := state.Controls()
	update := map[string]any{
		"carousels": map[string]any{
			section: map[string]any{
				"index":       state.CurrentIndex,
				"perView":     state.ItemsPerView,
				"offset":      state.OffsetPercent(),
				"prevEnabled": controls.PrevEnabled,
				"nextEnabled": controls.NextEnabled,
			},
		},
	}

	data, err := json.Marshal(update)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "marshal carousel signals", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchSignals(data); err != nil {
		h.logger.ErrorContext(r.Context(), "patch carousel signals", logger.Error(err))
	}
}
