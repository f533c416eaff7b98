package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"

	PackageName string = "package"
	RequestID   string = "request_id"
)

// ContextHandler adds the attributes stored by AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

// NewLogger builds the default application logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(ContextHandler{Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})})
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	existing, _ := parent.Value(slogFields).([]slog.Attr)

	// copy so sibling contexts never share a backing array
	v := make([]slog.Attr, 0, len(existing)+1)
	v = append(v, existing...)
	v = append(v, attr)

	return context.WithValue(parent, slogFields, v)
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// RequestCtx tags parent with a fresh request id and returns both.
func RequestCtx(parent context.Context) (context.Context, string) {
	id := uuid.NewString()

	return AppendCtx(parent, slog.String(RequestID, id)), id
}
