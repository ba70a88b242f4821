package span

import (
	"context"

	"go.scnd.dev/open/derive"
)

type ContextKey struct {
	Name string
}

var (
	ContextKeyDerive = ContextKey{
		Name: "derive",
	}
	ContextKeySpan = ContextKey{
		Name: "derive.span",
	}
)

func NewContext(derive derive.Derive, ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyDerive, derive)
}

func FromContext(ctx context.Context) derive.Derive {
	d, ok := ctx.Value(ContextKeyDerive).(derive.Derive)
	if !ok {
		return nil
	}

	return d
}

// Current returns the innermost span opened on ctx, or nil.
func Current(ctx context.Context) *Span {
	s, ok := ctx.Value(ContextKeySpan).(*Span)
	if !ok {
		return nil
	}

	return s
}
