package expand

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dave/jennifer/jen"
	"go.scnd.dev/open/derive"
)

const GeneratedHeader = "Code generated by derive. DO NOT EDIT."

// Emitter serializes fragments back into Go source.
type Emitter interface {
	Emit(ctx context.Context, output *Output) ([]byte, error)
}

type JenEmitter struct{}

func NewJenEmitter() *JenEmitter {
	return new(JenEmitter)
}

func (r *JenEmitter) Emit(ctx context.Context, output *Output) ([]byte, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	if output == nil || len(output.Fragments) == 0 {
		return nil, s.Error("nothing to emit", ErrEmit)
	}
	if output.Package == "" {
		return nil, s.Error("package name is empty", ErrEmit)
	}
	s.Variable("package", output.Package)
	s.Variable("fragments", len(output.Fragments))

	// * construct file
	var file *jen.File
	if output.ImportPath != "" {
		file = jen.NewFilePathName(output.ImportPath, output.Package)
	} else {
		file = jen.NewFile(output.Package)
	}
	file.HeaderComment(GeneratedHeader)

	for _, fragment := range output.Fragments {
		EmitFragment(file, fragment)
	}

	// * render, formatting failures surface invalid identifiers
	buffer := new(bytes.Buffer)
	if err := file.Render(buffer); err != nil {
		return nil, s.Error("unable to render source", fmt.Errorf("%w: %v", ErrEmit, err))
	}

	return buffer.Bytes(), nil
}

// EmitFragment appends the method and its interface assertion to file.
func EmitFragment(file *jen.File, fragment *Fragment) {
	trait := fragment.Trait

	file.Commentf("%s implements %s.%s.", trait.Method, trait.Qualifier(), trait.Name)
	file.Func().
		Params(jen.Id(fragment.Identifier)).
		Id(trait.Method).
		Params().
		String().
		Block(
			jen.Return(jen.Lit(fragment.Message)),
		)
	file.Line()
	file.Var().Id("_").Qual(trait.Package, trait.Name).Op("=").
		Parens(jen.Op("*").Id(fragment.Identifier)).
		Call(jen.Nil())
	file.Line()
}
