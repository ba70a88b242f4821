// Package sample holds annotated types and their generated implementations.
package sample

//go:generate go run go.scnd.dev/open/derive/command/derive generate .

// Pancakes is served with syrup.
//
// @derive HelloMacro
type Pancakes struct {
	Stack int
	Syrup bool
}

// @derive HelloMacro
type Waffles []string

type Toast struct{}
