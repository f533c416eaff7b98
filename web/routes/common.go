package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/runsha/sketchfolio/model"
)

// ErrWriteResponse marks failures after the response has started; the status
// line is already sent, so callers must not write an error page.
var ErrWriteResponse = errors.New("could not write to response writer")

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Profile *model.Profile
	// Tracker is optional; nil disables view tracking.
	Tracker *ViewTracker
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)

		return fmt.Errorf("%w: %w", ErrWriteResponse, err)
	}

	return nil
}
