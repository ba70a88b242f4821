package expand

// Fragment is one generated trait implementation. Identifier always equals
// the name of the tree it was generated from.
type Fragment struct {
	Identifier string `json:"identifier"`
	Trait      *Trait `json:"trait"`
	Message    string `json:"message"`
}

// Output groups the fragments rendered into a single Go file.
type Output struct {
	Package    string      `json:"package"`
	ImportPath string      `json:"importPath,omitempty"`
	Fragments  []*Fragment `json:"fragments"`
}
