package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/runsha/sketchfolio/model"
	cs "github.com/runsha/sketchfolio/web/components"
)

// SectionParam is the query parameter carrying the selected section.
const SectionParam = "section"

// BuildPageRenderContext builds the render context for the page.
func (s *ServerHandler) BuildPageRenderContext(selector *model.Selector) cs.RenderContext {
	return cs.RenderContext{
		Profile:  s.Profile,
		Selector: selector,
		Links:    cs.LinkModeQuery,
	}
}

// SelectorFromRequest applies the section requested in r to a fresh selector.
// A missing, empty or blank parameter leaves the default section.
func SelectorFromRequest(r *http.Request) (*model.Selector, error) {
	selector := model.NewSelector()

	raw := strings.TrimSpace(r.URL.Query().Get(SectionParam))
	if raw == "" {
		return selector, nil
	}

	section, err := model.ParseSection(raw)
	if err != nil {
		return nil, err
	}

	selector.Select(section)

	return selector, nil
}

// PageHandle handles requests to the portfolio page.
func (s *ServerHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	selector, err := SelectorFromRequest(r)
	if err != nil {
		slog.InfoContext(ctx, "Rejected section", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	slog.DebugContext(ctx, "Handling page request", "section", selector.Current())

	renderContext := s.BuildPageRenderContext(selector)

	if err := SafeRenderTemplate(ctx, cs.Page(&renderContext), w); err != nil {
		if errors.Is(err, ErrWriteResponse) {
			slog.WarnContext(ctx, "Client went away", "error", err)

			return
		}

		slog.ErrorContext(ctx, "Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if s.Tracker != nil {
		s.Tracker.Track(r, selector.Current())
	}
}
