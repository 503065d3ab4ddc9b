// Package ctxutil carries per-request identity through context.Context.
package ctxutil

import (
	"context"
	"log/slog"
	"strings"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID returns a copy of ctx that carries the authenticated caller.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the caller stored by WithUserID. Blank ids count
// as anonymous.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(userIDKey{}).(string)
	if strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when ctx has no request id.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogAttrs returns the request_id and user_id attributes present in ctx.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id))
	}
	return attrs
}
