package expand

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/package/expand"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	application, err := app.New(context.Background(), &app.Option{
		Directory:  t.TempDir(),
		ConfigName: config.FileName,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = application.Stop(context.Background())
	})
	return application
}

func TestRun(t *testing.T) {
	application := newApp(t)
	out := new(bytes.Buffer)

	err := Run(context.Background(), application, &Command{Package: "main"}, strings.NewReader("type Pancakes struct{}"), out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "package main")
	assert.Contains(t, out.String(), `return "Hello, Macro! My name is Pancakes!"`)
}

func TestRunPackageClause(t *testing.T) {
	application := newApp(t)
	out := new(bytes.Buffer)

	err := Run(context.Background(), application, &Command{Package: "main"}, strings.NewReader("package breakfast\n\ntype Waffles int"), out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "package breakfast")
	assert.Contains(t, out.String(), "func (Waffles) HelloMacro() string")
}

func TestRunInputFile(t *testing.T) {
	application := newApp(t)
	input := filepath.Join(t.TempDir(), "input.go")
	require.NoError(t, os.WriteFile(input, []byte("type Pancakes struct{}"), 0644))
	out := new(bytes.Buffer)

	err := Run(context.Background(), application, &Command{Input: input, Package: "menu"}, strings.NewReader("ignored"), out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "package menu")
	assert.Contains(t, out.String(), "My name is Pancakes!")
}

func TestRunMalformed(t *testing.T) {
	application := newApp(t)
	out := new(bytes.Buffer)

	err := Run(context.Background(), application, &Command{Package: "main"}, strings.NewReader("type struct {"), out)
	assert.ErrorIs(t, err, expand.ErrMalformedInput)
	assert.Zero(t, out.Len())
}
