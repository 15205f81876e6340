package gosrc

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/reuseid/internal/expand"
)

// Scan collects file scope declarations annotated with the directive, in source order.
// Declarations inside function bodies are never collected: methods cannot be declared
// on function local types.
func Scan(fset *token.FileSet, file *ast.File, directive string) []Target {
	var targets []Target
	for _, decl := range file.Decls {
		targets = append(targets, TargetsOf(fset, decl, directive)...)
	}

	return targets
}

// TargetsOf returns annotated declarations introduced by the node itself. Only
// *ast.GenDecl and *ast.FuncDecl nodes can introduce them, callers are responsible
// for passing file scope declarations only.
func TargetsOf(fset *token.FileSet, n ast.Node, directive string) []Target {
	switch node := n.(type) {
	case *ast.GenDecl:
		switch node.Tok {
		case token.TYPE:
			return scanGenDecl(fset, node, directive)
		case token.VAR, token.CONST:
			return scanValueDecl(fset, node, directive)
		default:
			return nil
		}

	case *ast.FuncDecl:
		c := FindDirective(node.Doc, directive)
		if c == nil {
			return nil
		}
		return []Target{{
			Site:  site(fset, c, directive),
			Decl:  DescribeFunc(fset, node),
			Pos:   node.Pos(),
			Start: c.Pos(),
			End:   node.End(),
		}}

	default:
		return nil
	}
}

func scanGenDecl(fset *token.FileSet, gen *ast.GenDecl, directive string) []Target {
	var targets []Target
	for _, s := range gen.Specs {
		spec, ok := s.(*ast.TypeSpec)
		if !ok {
			continue
		}

		c := FindDirective(spec.Doc, directive)
		end := spec.End()
		if c == nil && !gen.Lparen.IsValid() {
			c = FindDirective(gen.Doc, directive)
			end = gen.End()
		}
		if c == nil {
			continue
		}

		targets = append(targets, Target{
			Site:  site(fset, c, directive),
			Decl:  DescribeType(fset, gen, spec),
			Pos:   declPos(gen, spec),
			Start: c.Pos(),
			End:   end,
		})
	}

	return targets
}

// scanValueDecl reports annotated variables and constants so the directive is never
// silently dropped. They can never be expanded.
func scanValueDecl(fset *token.FileSet, gen *ast.GenDecl, directive string) []Target {
	var targets []Target
	for _, s := range gen.Specs {
		spec, ok := s.(*ast.ValueSpec)
		if !ok || len(spec.Names) == 0 {
			continue
		}

		c := FindDirective(spec.Doc, directive)
		end, pos := spec.End(), spec.Pos()
		if c == nil && !gen.Lparen.IsValid() {
			c = FindDirective(gen.Doc, directive)
			end, pos = gen.End(), gen.Pos()
		}
		if c == nil {
			continue
		}

		targets = append(targets, Target{
			Site: site(fset, c, directive),
			Decl: expand.Declaration{
				Name: spec.Names[0].Name,
				Kind: expand.DeclKindOther,
				Pos:  fset.Position(pos),
			},
			Pos:   pos,
			Start: c.Pos(),
			End:   end,
		})
	}

	return targets
}

func site(fset *token.FileSet, c *ast.Comment, directive string) expand.AttributeSite {
	return expand.AttributeSite{
		Directive: directive,
		Pos:       fset.Position(c.Pos()),
	}
}
