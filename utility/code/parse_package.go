package code

import (
	"context"
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"sort"

	"go.scnd.dev/open/derive"
)

// ParsePackage parses every eligible Go file of a directory. It returns nil
// when the directory holds no eligible files.
func ParsePackage(ctx context.Context, path string) (*Package, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("path", path)

	if path == "" {
		return nil, s.Error("package path cannot be empty", nil)
	}

	// * validate that the path exists and is a directory
	info, err := os.Stat(path)
	if err != nil {
		return nil, s.Error("failed to access package path", err)
	}
	if !info.IsDir() {
		return nil, s.Error("package path is not a directory", nil)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, s.Error("failed to read package directory", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	pkg := &Package{
		Path:       &path,
		ImportPath: nil,
		Name:       nil,
		Files:      []*File{},
	}

	for _, entry := range entries {
		if entry.IsDir() || !ParseFileEligible(entry.Name()) {
			continue
		}

		// * skip files excluded by build constraints, e.g. //go:build ignore
		match, err := build.Default.MatchFile(path, entry.Name())
		if err != nil {
			return nil, s.Error("failed to read build constraints", err)
		}
		if !match {
			continue
		}

		file, err := ParseFile(ctx, filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, s.Error("failed to parse package file", err)
		}

		// * all files must share one package clause
		name := file.Node.Name.Name
		if pkg.Name == nil {
			pkg.Name = &name
		} else if *pkg.Name != name {
			return nil, s.Error(fmt.Sprintf("found packages %s and %s in %s", *pkg.Name, name, path), nil)
		}

		pkg.Files = append(pkg.Files, file)
	}

	if len(pkg.Files) == 0 {
		return nil, nil
	}

	return pkg, nil
}
