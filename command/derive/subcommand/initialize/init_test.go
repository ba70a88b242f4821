package initialize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/command/derive/template"
)

func newApp(t *testing.T, dir string) *app.App {
	t.Helper()
	application, err := app.New(context.Background(), &app.Option{
		Directory:  dir,
		ConfigName: config.FileName,
		SkipConfig: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = application.Stop(context.Background())
	})
	return application
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Run(context.Background(), newApp(t, dir), new(Command)))

	content, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, template.StructureConfig, content)

	// * the written configuration loads and validates
	conf, found, err := config.Load(dir, config.FileName)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "go.scnd.dev/open/derive/hello", conf.GetTraitPackage())
	require.Len(t, conf.GetScans(), 1)
	assert.True(t, conf.GetScans()[0].IsRecursive())
}

func TestRunExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("scans: []\n"), 0644))
	application := newApp(t, dir)

	err := Run(context.Background(), application, new(Command))
	assert.ErrorIs(t, err, ErrExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "scans: []\n", string(content))

	require.NoError(t, Run(context.Background(), application, &Command{Force: true}))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, template.StructureConfig, content)
}

func TestRunReplacesInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("scans:\n  - recursive: true\n"), 0644))

	require.NoError(t, Run(context.Background(), newApp(t, dir), &Command{Force: true}))

	_, _, err := config.Load(dir, config.FileName)
	require.NoError(t, err)
}
