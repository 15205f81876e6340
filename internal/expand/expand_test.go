package expand

import (
	"go/token"
	"sync"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/reuseid/internal/rules"
)

type recordingContext struct {
	diags []Diagnostic
}

func (c *recordingContext) Diagnose(d Diagnostic) {
	c.diags = append(c.diags, d)
}

var (
	declPos = token.Position{Filename: "cells.swift", Offset: 0, Line: 1, Column: 1}
	site    = AttributeSite{Directive: "ReuseIdentifier", Pos: token.Position{Filename: "cells.swift", Line: 1, Column: 1}}
)

func TestExpandScenarios(t *testing.T) {
	tests := []struct {
		name    string
		decl    Declaration
		members []Member
		diags   []Diagnostic
	}{
		{
			name: "class inheriting from a table view cell",
			decl: Declaration{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}, Pos: declPos},
			members: []Member{{
				Owner:  "MyCell",
				Name:   "identifier",
				Source: `static let identifier = "MyCell"`,
			}},
		},
		{
			name: "value type",
			decl: Declaration{Name: "MyCell", Kind: DeclKindValueType, Pos: declPos},
			diags: []Diagnostic{{
				Rule:     rules.RID001ClassOnly,
				Severity: rules.SeverityError,
				ID:       "ReuseIdentifierKit.classOnly",
				Message:  "This macro can only be applied to class declarations.",
				Pos:      declPos,
			}},
		},
		{
			name: "class without inheritance",
			decl: Declaration{Name: "MyCell", Kind: DeclKindClass, Pos: declPos},
			diags: []Diagnostic{{
				Rule:     rules.RID002InvalidType,
				Severity: rules.SeverityError,
				ID:       "ReuseIdentifierKit.invalidType",
				Message:  "This macro can only be applied to UITableViewCell, UICollectionViewCell or UICollectionReusableView",
				Pos:      declPos,
			}},
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctx recordingContext
			members := engine.Expand(&ctx, site, tt.decl)

			assert.Equal(t, tt.members, members)
			if !assert.Equal(t, tt.diags, ctx.diags) {
				deepequal.SideBySide(t, "diagnostics", tt.diags, ctx.diags)
			}
		})
	}
}

func TestExpandOutcomeInvariant(t *testing.T) {
	decls := []Declaration{
		{Name: "A", Kind: DeclKindClass, BaseTypes: []string{"UICollectionViewCell"}},
		{Name: "B", Kind: DeclKindClass, BaseTypes: []string{"NSObject", "UICollectionReusableView"}},
		{Name: "C", Kind: DeclKindClass, BaseTypes: []string{"NSObject"}},
		{Name: "D", Kind: DeclKindClass},
		{Name: "E", Kind: DeclKindProtocol},
		{Name: "F", Kind: DeclKindExtension, BaseTypes: []string{"UITableViewCell"}},
		{Name: "G", Kind: DeclKindOther},
	}

	engine := NewEngine()
	for _, decl := range decls {
		t.Run(decl.Name, func(t *testing.T) {
			var ctx recordingContext
			members := engine.Expand(&ctx, site, decl)

			switch {
			case len(members) > 0:
				assert.Len(t, members, 1)
				assert.Empty(t, ctx.diags)
			default:
				assert.Len(t, ctx.diags, 1)
			}
		})
	}
}

func TestExpandDoesNotMutateDeclaration(t *testing.T) {
	decl := Declaration{
		Name:       "Box",
		Kind:       DeclKindClass,
		BaseTypes:  []string{"UITableViewCell"},
		TypeParams: []string{"T"},
		Pos:        declPos,
	}
	orig := decl.Clone()

	NewEngine(WithDialect(DialectGo)).Expand(ContextFunc(func(Diagnostic) {}), site, decl)

	assert.Equal(t, orig, decl)
}

func TestExpandIdempotent(t *testing.T) {
	engine := NewEngine()
	decls := []Declaration{
		{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}, Pos: declPos},
		{Name: "MyCell", Kind: DeclKindValueType, Pos: declPos},
	}

	for _, decl := range decls {
		var first, second recordingContext
		a := engine.Expand(&first, site, decl)
		b := engine.Expand(&second, site, decl)

		assert.Equal(t, a, b)
		assert.Equal(t, first.diags, second.diags)
	}
}

func TestEvaluate(t *testing.T) {
	engine := NewEngine(WithDialect(DialectGo))

	res := engine.Evaluate(Declaration{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}})
	syn, ok := res.(*Synthesized)
	require.True(t, ok)
	assert.Equal(t, `func (MyCell) Identifier() string { return "MyCell" }`, syn.Member.Source)

	res = engine.Evaluate(Declaration{Name: "MyCell", Kind: DeclKindClass, BaseTypes: []string{"UIView"}})
	rej, ok := res.(*Rejected)
	require.True(t, ok)
	assert.Equal(t, ReasonInvalidBaseType, rej.Reason)
	assert.Equal(t, rules.RID002InvalidType, rej.Diagnostic.Rule)
}

func TestExpandConcurrent(t *testing.T) {
	const n = 200

	engine := NewEngine()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		diags int
	)
	ctx := ContextFunc(func(Diagnostic) {
		mu.Lock()
		diags++
		mu.Unlock()
	})

	results := make([][]Member, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			decl := Declaration{Name: "Cell", Kind: DeclKindClass, BaseTypes: []string{"UITableViewCell"}}
			if i%2 == 1 {
				decl.Kind = DeclKindValueType
			}
			results[i] = engine.Expand(ctx, site, decl)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n/2, diags)
	for i, r := range results {
		if i%2 == 1 {
			assert.Empty(t, r)
			continue
		}
		assert.Equal(t, `static let identifier = "Cell"`, r[0].Source)
	}
}

func TestDiagnoseUnknownReason(t *testing.T) {
	_, ok := Diagnose(ReasonNone, Declaration{})
	assert.False(t, ok)

	_, ok = Diagnose(Reason(99), Declaration{})
	assert.False(t, ok)
}
