package code

import (
	"go/ast"
	"strings"

	"go.scnd.dev/open/derive/utility/form"
)

const AnnotatePrefix = "@derive"

// ParseAnnotations reads "@derive Trait[, Trait]" lines from a doc comment.
// Trait names are normalised to pascal case and deduplicated.
func ParseAnnotations(commentGroup *ast.CommentGroup) []*Annotate {
	annotates := make([]*Annotate, 0)

	if commentGroup == nil {
		return annotates
	}

	seen := make(map[string]bool)
	for _, comment := range commentGroup.List {
		if comment == nil {
			continue
		}

		text := comment.Text
		text = strings.TrimSpace(text)
		text = strings.TrimPrefix(text, "//")
		text = strings.TrimSpace(text)

		if !strings.HasPrefix(text, AnnotatePrefix) {
			continue
		}

		text = strings.TrimPrefix(text, AnnotatePrefix)
		// * reject prefixes of longer words such as @deriveX
		if text != "" && text[0] != ' ' && text[0] != '\t' {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, field := range fields {
			trait := form.ToPascalCase(field)
			if trait == "" || seen[trait] {
				continue
			}
			seen[trait] = true
			annotates = append(annotates, &Annotate{
				Trait: &trait,
			})
		}
	}

	return annotates
}
