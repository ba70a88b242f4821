// Package hello declares the HelloMacro trait implemented by derive-generated
// code.
package hello

import "fmt"

// Format is the announcement every generated HelloMacro method returns. The
// single verb receives the type name.
const Format = "Hello, Macro! My name is %s!"

type HelloMacro interface {
	HelloMacro() string
}

func Message(name string) string {
	return fmt.Sprintf(Format, name)
}
