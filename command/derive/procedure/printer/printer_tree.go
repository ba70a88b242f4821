package printer

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/derive/utility/code"
)

// PrintTree writes module, package, type and trait nodes. Packages without
// annotated types are omitted.
func PrintTree(w io.Writer, module *code.Module) error {
	root := gtree.NewRoot(*module.Name)
	for _, pkg := range module.Packages {
		trees := pkg.Annotated()
		if len(trees) == 0 {
			continue
		}

		node := root.Add(PackageLabel(pkg))
		for _, tree := range trees {
			child := node.Add(TreeLabel(tree))
			for _, annotate := range tree.Annotates {
				child.Add(*annotate.Trait)
			}
		}
	}

	return gtree.OutputFromRoot(w, root)
}

func PackageLabel(pkg *code.Package) string {
	if pkg.ImportPath != nil {
		return *pkg.ImportPath
	}
	return *pkg.Name
}

func TreeLabel(tree *code.Tree) string {
	if tree.Kind == nil {
		return *tree.Name
	}
	return fmt.Sprintf("%s (%s)", *tree.Name, *tree.Kind)
}
