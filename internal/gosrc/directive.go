package gosrc

import (
	"go/ast"
	"strings"
)

// FindDirective returns the comment of doc holding the directive. The directive must
// follow the comment marker immediately, e.g. "//reuseid:identifier", and may be
// followed by space separated arguments which are ignored.
func FindDirective(doc *ast.CommentGroup, directive string) *ast.Comment {
	if doc == nil || directive == "" {
		return nil
	}

	for _, c := range doc.List {
		if matchDirective(c.Text, directive) {
			return c
		}
	}

	return nil
}

func matchDirective(text, directive string) bool {
	rest, ok := strings.CutPrefix(text, "//"+directive)
	if !ok {
		return false
	}

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}
