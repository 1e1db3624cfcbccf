package components

import (
	"context"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

type ctxKey int

const builderKey ctxKey = 0

// WithBuilder returns a context carrying the class builder components
// resolve their styles from. The preview server installs a per-theme
// builder this way; tests install isolated ones.
func WithBuilder(ctx context.Context, b *tailwind.Builder) context.Context {
	return context.WithValue(ctx, builderKey, b)
}

// builderFrom extracts the context's builder, falling back to the shared
// default so bare contexts still render.
func builderFrom(ctx context.Context) *tailwind.Builder {
	if b, ok := ctx.Value(builderKey).(*tailwind.Builder); ok && b != nil {
		return b
	}
	return tailwind.Default()
}
