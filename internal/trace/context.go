package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// WithTracer кладёт t в ctx; nil заменяется на Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext never returns nil.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// Start opens a span on the context's tracer, parented to the span
// already stored in ctx (if any), and returns a ctx carrying the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	var parent uint64
	if p, ok := ctx.Value(spanKey{}).(*Span); ok {
		parent = p.ID()
	}
	s := Begin(FromContext(ctx), scope, name, parent)
	if !s.live() {
		return ctx, s
	}
	return context.WithValue(ctx, spanKey{}, s), s
}
