package expand

import (
	"github.com/sirkon/reuseid/internal/basekind"
)

// Result is the tagged outcome of an expansion: either *Synthesized or *Rejected.
type Result interface {
	isResult()
}

// Synthesized is the result for eligible declarations.
type Synthesized struct {
	Member Member
}

// Rejected is the result for ineligible declarations.
type Rejected struct {
	Reason     Reason
	Diagnostic Diagnostic
}

func (*Synthesized) isResult() {}
func (*Rejected) isResult()    {}

// Engine sequences eligibility checking, diagnostics and member synthesis.
type Engine struct {
	checker *Checker
	synth   Synthesizer
}

// Option configures an Engine.
type Option func(e *engineOptions)

type engineOptions struct {
	catalog *basekind.Catalog
	dialect Dialect
}

// WithCatalog sets the recognized base kinds. Nil means the default UIKit catalog.
func WithCatalog(c *basekind.Catalog) Option {
	return func(o *engineOptions) {
		o.catalog = c
	}
}

// WithDialect sets the dialect synthesized members are rendered in.
func WithDialect(d Dialect) Option {
	return func(o *engineOptions) {
		o.dialect = d
	}
}

// NewEngine creates an expansion engine. It defaults to the UIKit catalog and DialectSwift.
func NewEngine(opts ...Option) *Engine {
	o := engineOptions{dialect: DialectSwift}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		checker: NewChecker(o.catalog),
		synth:   NewSynthesizer(o.dialect),
	}
}

// Dialect returns the dialect of synthesized members.
func (e *Engine) Dialect() Dialect {
	return e.synth.Dialect()
}

// Evaluate decides the expansion outcome of the declaration without emitting anything.
func (e *Engine) Evaluate(decl Declaration) Result {
	v := e.checker.Check(decl)
	if !v.Eligible() {
		d, _ := Diagnose(v.Reason, decl)
		return &Rejected{
			Reason:     v.Reason,
			Diagnostic: d,
		}
	}

	return &Synthesized{
		Member: e.synth.Synthesize(v.Name, decl.TypeParams),
	}
}

// Expand runs a single expansion of the declaration annotated at site.
//
// It returns the single synthesized member for eligible declarations. Otherwise it emits
// exactly one diagnostic into ctx and returns nil. The site only identifies the
// triggering annotation: diagnostics are attached to the declaration itself.
func (e *Engine) Expand(ctx Context, site AttributeSite, decl Declaration) []Member {
	switch r := e.Evaluate(decl).(type) {
	case *Synthesized:
		return []Member{r.Member}
	case *Rejected:
		ctx.Diagnose(r.Diagnostic)
		return nil
	default:
		return nil
	}
}
