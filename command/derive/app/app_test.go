package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/package/expand"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("trait_package: example.com/breakfast/trait\n"), 0644))

	app, err := New(context.Background(), &Option{
		Verbose:    true,
		Directory:  dir,
		ConfigName: config.FileName,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, app.Stop(context.Background()))
	})

	assert.True(t, *app.Verbose())
	assert.Equal(t, dir, *app.Directory())
	assert.Equal(t, "example.com/breakfast/trait", app.Config().GetTraitPackage())
	assert.NotNil(t, app.Derive().Instrument())

	trait, err := app.Expander().Generator.Registry.Lookup(expand.HelloMacroName)
	require.NoError(t, err)
	assert.Equal(t, "example.com/breakfast/trait", trait.Package)
}

func TestNewInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("scans:\n  - recursive: true\n"), 0644))

	_, err := New(context.Background(), &Option{
		Directory:  dir,
		ConfigName: config.FileName,
	})
	assert.Error(t, err)
}

func TestNewSkipConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("scans:\n  - recursive: true\n"), 0644))

	app, err := New(context.Background(), &Option{
		Directory:  dir,
		ConfigName: config.FileName,
		SkipConfig: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, app.Stop(context.Background()))
	})

	assert.Equal(t, expand.HelloMacroPackage, app.Config().GetTraitPackage())
}
