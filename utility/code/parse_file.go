package code

import (
	"context"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"go.scnd.dev/open/derive"
)

// GeneratedSuffix marks files written by the generator. They are never
// scanned for annotations.
const GeneratedSuffix = "_derive.go"

func ParseFile(ctx context.Context, filePath string) (*File, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("filePath", filePath)

	if filePath == "" {
		return nil, s.Error("file path cannot be empty", nil)
	}

	// * parse the Go file
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, s.Error("failed to parse file", err)
	}

	fileName := filepath.Base(filePath)
	file := &File{
		Path:  &filePath,
		Name:  &fileName,
		Trees: ParseFileTrees(node),
		Node:  node,
	}

	return file, nil
}

// ParseFileEligible reports whether a file name takes part in scanning.
func ParseFileEligible(name string) bool {
	if !strings.HasSuffix(name, ".go") {
		return false
	}
	if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, GeneratedSuffix) {
		return false
	}
	return true
}
