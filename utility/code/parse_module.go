package code

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.scnd.dev/open/derive"
	"golang.org/x/mod/modfile"
)

// FindModule walks up from dir to the nearest go.mod and returns the module
// root and module path.
func FindModule(dir string) (string, string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", false
	}

	for {
		data, err := os.ReadFile(filepath.Join(abs, "go.mod"))
		if err == nil {
			if name := modfile.ModulePath(data); name != "" {
				return abs, name, true
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", "", false
		}
		abs = parent
	}
}

// ParseDirectory parses the package in root and, when recursive, every
// package below it. Hidden, vendor and testdata directories are skipped.
func ParseDirectory(ctx context.Context, root string, recursive bool) ([]*Package, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("root", root)
	s.Variable("recursive", recursive)

	moduleRoot, moduleName, moduleFound := FindModule(root)

	packages := make([]*Package, 0)
	visit := func(dir string) error {
		pkg, err := ParsePackage(ctx, dir)
		if err != nil {
			return err
		}
		if pkg == nil {
			return nil
		}

		// * resolve import path from module root
		if moduleFound {
			abs, err := filepath.Abs(dir)
			if err == nil {
				if rel, err := filepath.Rel(moduleRoot, abs); err == nil && !strings.HasPrefix(rel, "..") {
					importPath := moduleName
					if rel != "." {
						importPath = moduleName + "/" + filepath.ToSlash(rel)
					}
					pkg.ImportPath = &importPath
				}
			}
		}

		packages = append(packages, pkg)
		return nil
	}

	if !recursive {
		if err := visit(root); err != nil {
			return nil, s.Error("failed to parse directory", err)
		}
		return packages, nil
	}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}

		// * skip directories that should not be packages
		name := entry.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata" || name == "node_modules") {
			return filepath.SkipDir
		}

		// * nested modules are scanned on their own
		if path != root {
			if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
				return filepath.SkipDir
			}
		}

		return visit(path)
	})
	if err != nil {
		return nil, s.Error("failed to walk directory", err)
	}

	return packages, nil
}

func ParseModule(ctx context.Context, path string) (*Module, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	root, name, ok := FindModule(path)
	if !ok {
		return nil, s.Error("go.mod not found", nil)
	}

	packages, err := ParseDirectory(ctx, root, true)
	if err != nil {
		return nil, s.Error("failed to parse module", err)
	}

	return &Module{
		Path:     &root,
		Name:     &name,
		Packages: packages,
	}, nil
}
