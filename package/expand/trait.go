package expand

import (
	"fmt"
	"path"
	"sort"

	"go.scnd.dev/open/derive/hello"
)

const (
	HelloMacroName    = "HelloMacro"
	HelloMacroPackage = "go.scnd.dev/open/derive/hello"
)

// Trait describes a single-method interface whose implementation returns a
// message built from the implementing type's name.
type Trait struct {
	Name    string `json:"name"`
	Method  string `json:"method"`
	Package string `json:"package"`
	Format  string `json:"format"`
}

func (r *Trait) Message(identifier string) string {
	return fmt.Sprintf(r.Format, identifier)
}

// Qualifier is the package name the trait is referred to by.
func (r *Trait) Qualifier() string {
	return path.Base(r.Package)
}

// HelloMacroTrait returns the HelloMacro trait declared in pkg, or in the
// bundled hello package when pkg is empty.
func HelloMacroTrait(pkg string) *Trait {
	if pkg == "" {
		pkg = HelloMacroPackage
	}

	return &Trait{
		Name:    HelloMacroName,
		Method:  HelloMacroName,
		Package: pkg,
		Format:  hello.Format,
	}
}

type Registry struct {
	Default string
	traits  map[string]*Trait
}

// NewRegistry registers traits by name. The first trait becomes the default
// for trees without annotations.
func NewRegistry(traits ...*Trait) *Registry {
	registry := &Registry{
		traits: make(map[string]*Trait),
	}
	for _, trait := range traits {
		if registry.Default == "" {
			registry.Default = trait.Name
		}
		registry.traits[trait.Name] = trait
	}
	return registry
}

func (r *Registry) Lookup(name string) (*Trait, error) {
	trait, ok := r.traits[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTrait, name)
	}
	return trait, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.traits))
	for name := range r.traits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
