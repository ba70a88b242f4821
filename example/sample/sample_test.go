package sample

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/derive/hello"
	"go.scnd.dev/open/derive/package/expand"
	"go.scnd.dev/open/derive/utility/code"
)

func TestHelloMacro(t *testing.T) {
	assert.Equal(t, "Hello, Macro! My name is Pancakes!", Pancakes{}.HelloMacro())
	assert.Equal(t, "Hello, Macro! My name is Waffles!", Waffles{}.HelloMacro())

	macros := []hello.HelloMacro{&Pancakes{Stack: 3}, Waffles{"belgian"}}
	for _, macro := range macros {
		assert.Contains(t, macro.HelloMacro(), "Hello, Macro!")
	}

	_, ok := any(Toast{}).(hello.HelloMacro)
	assert.False(t, ok)
}

func TestGeneratedUpToDate(t *testing.T) {
	pkg, err := code.ParsePackage(context.Background(), ".")
	require.NoError(t, err)
	require.NotNil(t, pkg)

	rendered, err := expand.NewDefaultExpander(expand.HelloMacroPackage, nil).ExpandPackage(context.Background(), pkg)
	require.NoError(t, err)
	require.Len(t, rendered, 1)
	assert.Equal(t, "hello_macro_derive.go", rendered[0].FileName)

	current, err := os.ReadFile(rendered[0].FileName)
	require.NoError(t, err)

	for _, line := range []string{
		"func (Pancakes) HelloMacro() string {",
		`return "Hello, Macro! My name is Pancakes!"`,
		"var _ hello.HelloMacro = (*Pancakes)(nil)",
		"func (Waffles) HelloMacro() string {",
		"var _ hello.HelloMacro = (*Waffles)(nil)",
	} {
		assert.Contains(t, string(rendered[0].Source), line)
		assert.Contains(t, string(current), line)
	}
}
