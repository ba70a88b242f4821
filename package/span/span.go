package span

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Span struct {
	Name      *string        `json:"name,omitempty"`
	Path      []*string      `json:"path,omitempty"`
	Layer     *Layer         `json:"layer,omitempty"`
	Caller    *Caller        `json:"caller,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
	Started   *time.Time     `json:"started,omitempty"`
	Ended     *time.Time     `json:"ended,omitempty"`
	Children  []*Span        `json:"children,omitempty"`
	TraceSpan trace.Span     `json:"-"`
	mutex     sync.Mutex
}

// AddChild attaches child under r. Spans opened from one context by
// several goroutines share a parent.
func (r *Span) AddChild(child *Span) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Children = append(r.Children, child)
}

func (r *Span) Variable(key string, value any) {
	r.Variables[key] = value
}

func (r *Span) Error(message string, err error) error {
	if r.TraceSpan != nil {
		r.TraceSpan.SetStatus(codes.Error, message)
		if err != nil {
			r.TraceSpan.RecordError(err)
		}
	}

	return NewError(r, message, err)
}

func (r *Span) End() {
	end := time.Now()
	r.Ended = &end
	if r.TraceSpan != nil {
		r.TraceSpan.End()
	}
}
