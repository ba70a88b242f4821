package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/derive"
)

type Layer struct {
	Derive derive.Derive `json:"-"`
	Name   string        `json:"name,omitempty"`
	Type   string        `json:"type,omitempty"`
	Caller *Caller       `json:"caller,omitempty"`
}

func NewLayer(derive derive.Derive, name string, typ string) *Layer {
	caller := NewCaller()

	return &Layer{
		Derive: derive,
		Name:   name,
		Type:   typ,
		Caller: caller,
	}
}

func (r *Layer) With(ctx context.Context) (derive.Span, context.Context) {
	parent := Current(ctx)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	var layer *Layer
	if r.Name != "" {
		layer = r
	}

	// * resolve tracer from layer, context or global provider
	d := r.Derive
	if d == nil {
		d = FromContext(ctx)
	}
	var tracer trace.Tracer
	if d != nil {
		tracer = d.Tracer()
	} else {
		tracer = otel.Tracer("derive")
	}

	var tracingSpan trace.Span
	ctx, tracingSpan = tracer.Start(ctx, name)
	if layer != nil {
		tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))
	}

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     layer,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}

	if parent != nil {
		s.Path = append(append([]*string{}, parent.Path...), parent.Name)
		parent.AddChild(s)
	}

	return &Wrapper{Span: s}, context.WithValue(ctx, ContextKeySpan, s)
}
