package expand

import (
	"context"
	"sort"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/utility/code"
	"go.scnd.dev/open/derive/utility/form"
)

// Expander runs the parse, generate and emit stages for one input. Each
// call is independent; a failing stage aborts without partial output.
type Expander struct {
	Parser    code.Parser
	Generator *Generator
	Emitter   Emitter
}

// Rendered is the generated source for one trait of one package.
type Rendered struct {
	Trait    string `json:"trait"`
	FileName string `json:"fileName"`
	Source   []byte `json:"-"`
}

func NewExpander(parser code.Parser, generator *Generator, emitter Emitter) *Expander {
	return &Expander{
		Parser:    parser,
		Generator: generator,
		Emitter:   emitter,
	}
}

// NewDefaultExpander wires the Go parser, the jennifer emitter and a
// registry holding HelloMacro declared in traitPackage.
func NewDefaultExpander(traitPackage string, instrument derive.Instrument) *Expander {
	return NewExpander(
		code.NewGoParser(),
		NewGenerator(NewRegistry(HelloMacroTrait(traitPackage)), instrument),
		NewJenEmitter(),
	)
}

// Expand turns the source of a single type declaration into the source of
// its trait implementations. pkg names the output package when the input
// has no package clause.
func (r *Expander) Expand(ctx context.Context, pkg string, src []byte) ([]byte, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	tree, err := r.Parser.Parse(ctx, src)
	if err != nil {
		return nil, s.Error("unable to parse input", err)
	}

	fragments, err := r.Generator.GenerateTree(ctx, tree)
	if err != nil {
		return nil, s.Error("unable to generate implementation", err)
	}

	if tree.Package != nil {
		pkg = *tree.Package
	}

	source, err := r.Emitter.Emit(ctx, &Output{
		Package:   pkg,
		Fragments: fragments,
	})
	if err != nil {
		return nil, s.Error("unable to emit implementation", err)
	}

	return source, nil
}

// ExpandPackage renders one file per trait for the annotated trees of pkg,
// ordered by trait name. Packages without annotations yield nothing.
func (r *Expander) ExpandPackage(ctx context.Context, pkg *code.Package) ([]*Rendered, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("package", pkg.Name)

	// * group fragments by trait keeping source order
	grouped := make(map[string][]*Fragment)
	for _, tree := range pkg.Annotated() {
		fragments, err := r.Generator.GenerateTree(ctx, tree)
		if err != nil {
			return nil, s.Error("unable to generate implementation of "+*tree.Name, err)
		}
		for _, fragment := range fragments {
			grouped[fragment.Trait.Name] = append(grouped[fragment.Trait.Name], fragment)
		}
	}

	traits := make([]string, 0, len(grouped))
	for trait := range grouped {
		traits = append(traits, trait)
	}
	sort.Strings(traits)

	rendered := make([]*Rendered, 0, len(traits))
	for _, trait := range traits {
		output := &Output{
			Package:   *pkg.Name,
			Fragments: grouped[trait],
		}
		if pkg.ImportPath != nil {
			output.ImportPath = *pkg.ImportPath
		}

		source, err := r.Emitter.Emit(ctx, output)
		if err != nil {
			return nil, s.Error("unable to emit "+trait, err)
		}

		rendered = append(rendered, &Rendered{
			Trait:    trait,
			FileName: FileName(trait),
			Source:   source,
		})
	}

	return rendered, nil
}

// FileName is the generated file name for a trait, e.g. hello_macro_derive.go.
func FileName(trait string) string {
	return form.ToSnakeCase(trait) + code.GeneratedSuffix
}
