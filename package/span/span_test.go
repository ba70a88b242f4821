package span

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRoot = errors.New("root cause")

func inner(ctx context.Context) error {
	s, _ := NewLayer(nil, "", "").With(ctx)
	defer s.End()
	return s.Error("inner failed", errRoot)
}

func outer(ctx context.Context) error {
	s, ctx := NewLayer(nil, "test", "unit").With(ctx)
	defer s.End()
	s.Variable("key", "value")
	if err := inner(ctx); err != nil {
		return s.Error("outer failed", err)
	}
	return nil
}

func TestErrorChain(t *testing.T) {
	err := outer(context.Background())
	require.Error(t, err)

	assert.Equal(t, "outer failed: inner failed: root cause", err.Error())
	assert.ErrorIs(t, err, errRoot)

	var spanError *Error
	require.True(t, errors.As(err, &spanError))
	require.Len(t, spanError.Items, 2)
	assert.Equal(t, "inner failed", spanError.Message())
	assert.NotNil(t, spanError.Items[0].Trace)
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewError(nil, "path is nil", nil)
	assert.Equal(t, "path is nil", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestLayerNesting(t *testing.T) {
	parent, ctx := NewLayer(nil, "", "").With(context.Background())
	child, _ := NewLayer(nil, "", "").With(ctx)
	child.End()
	parent.End()

	root := parent.(*Wrapper).Span
	require.Len(t, root.Children, 1)
	assert.Same(t, child.(*Wrapper).Span, root.Children[0])
	require.Len(t, root.Children[0].Path, 1)
	assert.Equal(t, root.Name, root.Children[0].Path[0])
	assert.NotNil(t, root.Ended)
}

func TestLayerConcurrentChildren(t *testing.T) {
	parent, ctx := NewLayer(nil, "", "").With(context.Background())
	defer parent.End()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			child, _ := NewLayer(nil, "", "").With(ctx)
			child.Variable("key", "value")
			child.End()
		}()
	}
	wg.Wait()

	assert.Len(t, parent.(*Wrapper).Span.Children, 32)
}
