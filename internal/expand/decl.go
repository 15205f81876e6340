package expand

import (
	"fmt"
	"go/token"
	"slices"
)

// DeclKind describes the syntactic kind of an annotated declaration.
type DeclKind int

const (
	DeclKindInvalid DeclKind = iota

	// DeclKindClass is the class-like, reference semantics kind. Only declarations of
	// this kind can be expanded.
	DeclKindClass

	// DeclKindValueType stands for structs, enums and other value types.
	DeclKindValueType

	DeclKindProtocol
	DeclKindExtension

	// DeclKindOther is anything else a directive can be attached to.
	DeclKindOther
)

var declKindValueMap = map[DeclKind]string{
	DeclKindClass:     "class",
	DeclKindValueType: "value-type",
	DeclKindProtocol:  "protocol",
	DeclKindExtension: "extension",
	DeclKindOther:     "other",
}

func (k DeclKind) String() string {
	v, ok := declKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Declaration is a read-only view of an annotated declaration.
type Declaration struct {
	Name string
	Kind DeclKind

	// BaseTypes lists declared base (inherited or conformed to) type names in
	// declaration order. It is empty when there is no inheritance clause at all.
	BaseTypes []string

	// TypeParams lists type parameter names of a generic declaration.
	TypeParams []string

	// Pos is where diagnostics about the declaration are attached.
	Pos token.Position
}

// Clone returns a deep copy of the declaration.
func (d Declaration) Clone() Declaration {
	d.BaseTypes = slices.Clone(d.BaseTypes)
	d.TypeParams = slices.Clone(d.TypeParams)
	return d
}

// AttributeSite is the annotation that triggered an expansion.
type AttributeSite struct {
	// Directive is the annotation text without comment markers, e.g. "reuseid:identifier".
	Directive string
	Pos       token.Position
}
