package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseParser splits an identifier into lowercase segments on case changes,
// underscores, hyphens and spaces. Runs of capitals stay together, so
// "HTTPServer" yields ["http", "server"].
func CaseParser(s string) []string {
	if s == "" {
		return []string{}
	}

	var segments []string
	var current strings.Builder
	runes := []rune(s)

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		// * separators end the current segment
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// * split on lower->upper and on the last capital of an acronym
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		current.WriteRune(unicode.ToLower(r))
	}
	flush()

	return segments
}

// ToPascalCase converts a string to pascal case
func ToPascalCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	caser := cases.Title(language.English)
	var result strings.Builder
	for _, segment := range segments {
		result.WriteString(caser.String(segment))
	}

	return result.String()
}

// ToCamelCase converts a string to camel case
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return pascal
	}

	segments := CaseParser(s)
	return segments[0] + pascal[len(segments[0]):]
}

// ToSnakeCase converts a string to snake case
func ToSnakeCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	return strings.Join(segments, "_")
}
