package expand

import (
	"context"
	"fmt"
	"time"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/utility/code"
)

type Generator struct {
	Registry   *Registry
	Instrument derive.Instrument
}

func NewGenerator(registry *Registry, instrument derive.Instrument) *Generator {
	return &Generator{
		Registry:   registry,
		Instrument: instrument,
	}
}

// Generate builds the implementation of trait for the type described by
// tree. It reads the tree and nothing else.
func (r *Generator) Generate(ctx context.Context, tree *code.Tree, trait string) (_ *Fragment, err error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("trait", trait)

	started := time.Now()
	defer func() {
		if r.Instrument != nil {
			r.Instrument.GenerateRecord(ctx, trait, time.Since(started), err == nil)
		}
	}()

	if tree == nil {
		return nil, s.Error("syntax tree is nil", ErrMalformedInput)
	}
	if tree.Name == nil || *tree.Name == "" {
		return nil, s.Error("type declaration has no identifier", ErrUnsupportedShape)
	}
	identifier := *tree.Name
	s.Variable("identifier", identifier)

	// * only named, non-generic types with a method set are accepted
	if tree.Generic() {
		return nil, s.Error(fmt.Sprintf("type %s has type parameters", identifier), ErrUnsupportedShape)
	}
	switch tree.Shape {
	case code.ShapeInterface, code.ShapePointer, code.ShapeAlias:
		return nil, s.Error(fmt.Sprintf("type %s is %s and cannot declare methods", identifier, tree.Shape), ErrUnsupportedShape)
	}

	t, err := r.Registry.Lookup(trait)
	if err != nil {
		return nil, s.Error("trait is not registered", err)
	}

	return &Fragment{
		Identifier: identifier,
		Trait:      t,
		Message:    t.Message(identifier),
	}, nil
}

// GenerateTree generates every trait the tree is annotated with, or the
// registry default when it carries no annotation.
func (r *Generator) GenerateTree(ctx context.Context, tree *code.Tree) ([]*Fragment, error) {
	if tree == nil {
		_, err := r.Generate(ctx, nil, r.Registry.Default)
		return nil, err
	}

	traits := make([]string, 0, len(tree.Annotates))
	for _, annotate := range tree.Annotates {
		traits = append(traits, *annotate.Trait)
	}
	if len(traits) == 0 {
		traits = append(traits, r.Registry.Default)
	}

	fragments := make([]*Fragment, 0, len(traits))
	for _, trait := range traits {
		fragment, err := r.Generate(ctx, tree, trait)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	return fragments, nil
}
