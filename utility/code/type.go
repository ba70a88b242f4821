package code

import "go/ast"

type Module struct {
	Path     *string    `json:"path"` // absolute path
	Name     *string    `json:"name"` // module name
	Packages []*Package `json:"packages"`
}

type Package struct {
	Path       *string `json:"path"`       // directory on disk
	ImportPath *string `json:"importPath"` // empty when outside a module
	Name       *string `json:"name"`
	Files      []*File `json:"files"`
}

type File struct {
	Path  *string   `json:"path"`
	Name  *string   `json:"name"`
	Trees []*Tree   `json:"trees"`
	Node  *ast.File `json:"-"`
}

// Tree is the parsed form of a single type declaration.
type Tree struct {
	Name       *string       `json:"name"`
	Package    *string       `json:"package,omitempty"`
	Kind       *string       `json:"kind"`
	Shape      Shape         `json:"shape"`
	TypeParams []*string     `json:"typeParams,omitempty"`
	Annotates  []*Annotate   `json:"annotates,omitempty"`
	Node       *ast.TypeSpec `json:"-"`
}

type Annotate struct {
	Trait *string `json:"trait"`
}

func (r *Package) Trees() []*Tree {
	trees := make([]*Tree, 0)
	for _, file := range r.Files {
		trees = append(trees, file.Trees...)
	}
	return trees
}

// Annotated returns the trees carrying at least one derive annotation.
func (r *Package) Annotated() []*Tree {
	trees := make([]*Tree, 0)
	for _, tree := range r.Trees() {
		if len(tree.Annotates) > 0 {
			trees = append(trees, tree)
		}
	}
	return trees
}

// Derives reports whether the tree is annotated with the given trait.
func (r *Tree) Derives(trait string) bool {
	for _, annotate := range r.Annotates {
		if annotate.Trait != nil && *annotate.Trait == trait {
			return true
		}
	}
	return false
}

func (r *Tree) Generic() bool {
	return len(r.TypeParams) > 0
}
