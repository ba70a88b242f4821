package code

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(dedent.Dedent(content)), 0644))
}

func sampleModule(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "go.mod"), `
		module example.com/breakfast

		go 1.25
	`)
	writeFile(t, filepath.Join(root, "main.go"), `
		package main

		func main() {}
	`)
	writeFile(t, filepath.Join(root, "menu", "menu.go"), `
		package menu

		// @derive HelloMacro
		type Pancakes struct{}

		type Waffles struct{}
	`)
	writeFile(t, filepath.Join(root, "menu", "menu_test.go"), `
		package menu

		// @derive HelloMacro
		type Fixture struct{}
	`)
	writeFile(t, filepath.Join(root, "menu", "hello_macro_derive.go"), `
		package menu

		// @derive HelloMacro
		type Generated struct{}
	`)
	writeFile(t, filepath.Join(root, "menu", "testdata", "skip.go"), `
		package skip

		// @derive HelloMacro
		type Skipped struct{}
	`)

	return root
}

func TestFindModule(t *testing.T) {
	root := sampleModule(t)

	moduleRoot, name, ok := FindModule(filepath.Join(root, "menu"))
	require.True(t, ok)
	assert.Equal(t, "example.com/breakfast", name)

	expected, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, expected, moduleRoot)
}

func TestParseModule(t *testing.T) {
	root := sampleModule(t)

	module, err := ParseModule(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/breakfast", *module.Name)
	require.Len(t, module.Packages, 2)

	main := module.Packages[0]
	assert.Equal(t, "main", *main.Name)
	assert.Equal(t, "example.com/breakfast", *main.ImportPath)
	assert.Empty(t, main.Annotated())

	menu := module.Packages[1]
	assert.Equal(t, "menu", *menu.Name)
	assert.Equal(t, "example.com/breakfast/menu", *menu.ImportPath)
	require.Len(t, menu.Files, 1)
	require.Len(t, menu.Trees(), 2)

	annotated := menu.Annotated()
	require.Len(t, annotated, 1)
	assert.Equal(t, "Pancakes", *annotated[0].Name)
}

func TestParseDirectoryNonRecursive(t *testing.T) {
	root := sampleModule(t)

	packages, err := ParseDirectory(context.Background(), root, false)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "main", *packages[0].Name)
}

func TestParsePackageMixedNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"), "package a\n")
	writeFile(t, filepath.Join(dir, "b.go"), "package b\n")

	_, err := ParsePackage(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found packages a and b")
}

func TestParsePackageEmpty(t *testing.T) {
	pkg, err := ParsePackage(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestParsePackageBuildIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "menu.go"), `
		package menu

		// @derive HelloMacro
		type Pancakes struct{}
	`)
	writeFile(t, filepath.Join(dir, "gen.go"), `
		//go:build ignore

		package main

		func main() {}
	`)

	pkg, err := ParsePackage(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, pkg)
	assert.Equal(t, "menu", *pkg.Name)
	require.Len(t, pkg.Files, 1)
	assert.Equal(t, "menu.go", *pkg.Files[0].Name)
}

func TestParseModuleSkipsNestedModule(t *testing.T) {
	root := sampleModule(t)
	writeFile(t, filepath.Join(root, "tools", "go.mod"), `
		module example.com/tools

		go 1.25
	`)
	writeFile(t, filepath.Join(root, "tools", "tools.go"), `
		package tools

		// @derive HelloMacro
		type Griddle struct{}
	`)

	module, err := ParseModule(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, module.Packages, 2)
	for _, pkg := range module.Packages {
		assert.NotEqual(t, "tools", *pkg.Name)
	}

	packages, err := ParseDirectory(context.Background(), filepath.Join(root, "tools"), true)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "example.com/tools", *packages[0].ImportPath)
}
