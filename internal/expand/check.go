package expand

import (
	"fmt"

	"github.com/sirkon/reuseid/internal/basekind"
)

// Reason explains why a declaration cannot be expanded.
type Reason int

const (
	// ReasonNone means the declaration is eligible.
	ReasonNone Reason = iota

	// ReasonNotClassDeclaration is given for anything but class declarations.
	ReasonNotClassDeclaration

	// ReasonInvalidBaseType is given for class declarations that do not inherit from
	// any recognized base kind, including ones with no base types at all.
	ReasonInvalidBaseType
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotClassDeclaration:
		return "not-class-declaration"
	case ReasonInvalidBaseType:
		return "invalid-base-type"
	default:
		return fmt.Sprintf("unknown-reason(%d)", r)
	}
}

// Verdict is the eligibility checker outcome.
type Verdict struct {
	// Reason is ReasonNone for eligible declarations.
	Reason Reason

	// Name is only set for eligible declarations.
	Name string
}

// Eligible reports whether the declaration may be expanded.
func (v Verdict) Eligible() bool {
	return v.Reason == ReasonNone
}

// Checker decides whether declarations qualify for expansion.
type Checker struct {
	catalog *basekind.Catalog
}

// NewChecker creates a checker over the given catalog of recognized base kinds.
// The default UIKit catalog is used when catalog is nil.
func NewChecker(catalog *basekind.Catalog) *Checker {
	if catalog == nil {
		catalog = basekind.Default()
	}

	return &Checker{catalog: catalog}
}

// Check runs the eligibility checks. The kind check goes first and base types
// are not looked at when it fails.
func (c *Checker) Check(decl Declaration) Verdict {
	if decl.Kind != DeclKindClass {
		return Verdict{Reason: ReasonNotClassDeclaration}
	}

	if _, ok := c.catalog.Match(decl.BaseTypes); !ok {
		return Verdict{Reason: ReasonInvalidBaseType}
	}

	return Verdict{
		Reason: ReasonNone,
		Name:   decl.Name,
	}
}
