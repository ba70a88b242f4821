package code

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"

	"go.scnd.dev/open/derive"
	_ "go.scnd.dev/open/derive/core"
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnsupportedShape = errors.New("unsupported shape")
)

// placeholderPackage is the package clause supplied to declarations that
// arrive without one. Trees parsed from such input carry no package name.
const placeholderPackage = "derive"

// Parser turns source text of a single type declaration into a Tree.
type Parser interface {
	Parse(ctx context.Context, src []byte) (*Tree, error)
}

type GoParser struct{}

func NewGoParser() *GoParser {
	return new(GoParser)
}

func (r *GoParser) Parse(ctx context.Context, src []byte) (*Tree, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("size", len(src))

	if len(bytes.TrimSpace(src)) == 0 {
		return nil, s.Error("empty input", ErrMalformedInput)
	}

	// * supply package clause when missing
	synthesized := !HasPackageClause(src)
	if synthesized {
		src = append([]byte("package "+placeholderPackage+"\n\n"), src...)
	}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, "", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, s.Error("unable to parse declaration", fmt.Errorf("%w: %v", ErrMalformedInput, err))
	}

	// * collect type declarations
	trees := ParseFileTrees(node)
	if len(trees) == 0 {
		return nil, s.Error("no type declaration found", ErrUnsupportedShape)
	}
	if len(trees) > 1 {
		return nil, s.Error(fmt.Sprintf("expected a single type declaration, found %d", len(trees)), ErrUnsupportedShape)
	}

	tree := trees[0]
	if synthesized {
		tree.Package = nil
	}
	s.Variable("name", tree.Name)

	return tree, nil
}

// HasPackageClause reports whether the first token of src, ignoring
// comments, is the package keyword.
func HasPackageClause(src []byte) bool {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var sc scanner.Scanner
	sc.Init(file, src, nil, 0)
	_, tok, _ := sc.Scan()

	return tok == token.PACKAGE
}

// ParseFileTrees returns a Tree for every type declaration of node in
// source order.
func ParseFileTrees(node *ast.File) []*Tree {
	trees := make([]*Tree, 0)
	for _, decl := range node.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// * ungrouped declarations keep their doc on the gen decl
			doc := typeSpec.Doc
			if doc == nil && !genDecl.Lparen.IsValid() {
				doc = genDecl.Doc
			}

			trees = append(trees, NewTree(node, typeSpec, doc))
		}
	}

	return trees
}

func NewTree(node *ast.File, spec *ast.TypeSpec, doc *ast.CommentGroup) *Tree {
	kind := ExprToString(spec.Type)
	tree := &Tree{
		Name:       &spec.Name.Name,
		Package:    nil,
		Kind:       &kind,
		Shape:      ShapeOf(spec),
		TypeParams: []*string{},
		Annotates:  ParseAnnotations(doc),
		Node:       spec,
	}

	if node != nil && node.Name != nil {
		tree.Package = &node.Name.Name
	}

	if spec.TypeParams != nil {
		for _, field := range spec.TypeParams.List {
			for _, name := range field.Names {
				tree.TypeParams = append(tree.TypeParams, &name.Name)
			}
		}
	}

	return tree
}
