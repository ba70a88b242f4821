package generate

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"github.com/fatih/color"
	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/command/derive/index"
	"go.scnd.dev/open/derive/package/expand"
	"go.scnd.dev/open/derive/utility/code"
)

const FileMode = 0o644

var (
	writeColor  = color.New(color.FgGreen, color.Bold)
	removeColor = color.New(color.FgYellow, color.Bold)
)

type Command struct {
	Paths     []string `arg:"" optional:"" help:"Directories to scan instead of the configured scans."`
	Recursive bool     `help:"Scan explicit paths recursively." short:"r"`
	DryRun    bool     `help:"Print files that would be written without writing them." name:"dry-run"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

// Run scans every configured directory and writes one generated file per
// package and trait next to the sources.
func Run(ctx context.Context, app index.App, command *Command) error {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	written := 0
	for _, scan := range Scans(app, command) {
		dir := *scan.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(*app.Directory(), dir)
		}
		log.Printf("scanning %s", dir)

		packages, err := code.ParseDirectory(ctx, dir, scan.IsRecursive())
		if err != nil {
			return s.Error("unable to scan "+dir, err)
		}

		for _, pkg := range packages {
			count, err := Package(ctx, app, pkg, command.DryRun)
			if err != nil {
				return s.Error("unable to generate package "+*pkg.Path, err)
			}
			written += count
		}
	}

	log.Printf("successfully generated %s files", writeColor.Sprint(written))
	return nil
}

// Scans resolves the explicit paths of the command, falling back to the
// configured scans.
func Scans(app index.App, command *Command) []*config.ScanConfig {
	if len(command.Paths) == 0 {
		return app.Config().GetScans()
	}

	scans := make([]*config.ScanConfig, 0, len(command.Paths))
	for _, path := range command.Paths {
		scans = append(scans, &config.ScanConfig{
			Dir:       gut.Ptr(path),
			Recursive: gut.Ptr(command.Recursive),
		})
	}
	return scans
}

// Package renders and writes the generated files of one package, then
// removes generated files of traits that are no longer annotated.
func Package(ctx context.Context, app index.App, pkg *code.Package, dryRun bool) (int, error) {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()
	s.Variable("package", *pkg.Path)

	rendered, err := app.Expander().ExpandPackage(ctx, pkg)
	if err != nil {
		return 0, s.Error("unable to expand package", err)
	}

	current := make(map[string]bool)
	for _, item := range rendered {
		path := filepath.Join(*pkg.Path, item.FileName)
		current[item.FileName] = true

		if dryRun {
			log.Printf("would write %s", path)
			continue
		}

		if err := os.WriteFile(path, item.Source, FileMode); err != nil {
			return 0, s.Error("unable to write "+path, err)
		}
		if *app.Verbose() {
			log.Printf("%s %s (%d bytes)", writeColor.Sprint("wrote"), path, len(item.Source))
		}
	}

	// * remove stale generated files
	for _, trait := range app.Expander().Generator.Registry.Names() {
		name := expand.FileName(trait)
		if current[name] {
			continue
		}

		path := filepath.Join(*pkg.Path, name)
		stale, err := Stale(path)
		if err != nil {
			return 0, s.Error("unable to inspect "+path, err)
		}
		if !stale {
			continue
		}

		if dryRun {
			log.Printf("would remove %s", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			return 0, s.Error("unable to remove "+path, err)
		}
		log.Printf("%s %s", removeColor.Sprint("removed"), path)
	}

	return len(rendered), nil
}

// Stale reports whether path exists and was written by derive.
func Stale(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return bytes.HasPrefix(content, []byte("// "+expand.GeneratedHeader)), nil
}
