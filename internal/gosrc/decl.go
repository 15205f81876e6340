package gosrc

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/reuseid/internal/expand"
)

// Target is an annotated declaration ready to be expanded.
type Target struct {
	Site expand.AttributeSite
	Decl expand.Declaration

	// Pos is the declaration position Decl.Pos was resolved from.
	Pos token.Pos

	// Start and End delimit the declaration including its directive.
	Start token.Pos
	End   token.Pos
}

// DescribeType turns the type spec into an engine declaration. gen is the type spec's
// parent declaration and may be nil.
func DescribeType(fset *token.FileSet, gen *ast.GenDecl, spec *ast.TypeSpec) expand.Declaration {
	decl := expand.Declaration{
		Name:       spec.Name.Name,
		TypeParams: typeParamNames(spec.TypeParams),
		Pos:        fset.Position(declPos(gen, spec)),
	}

	if spec.Assign.IsValid() {
		decl.Kind = expand.DeclKindExtension
		return decl
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = expand.DeclKindClass
		decl.BaseTypes = embeddedNames(t.Fields)
	case *ast.InterfaceType:
		decl.Kind = expand.DeclKindProtocol
	default:
		decl.Kind = expand.DeclKindValueType
	}

	return decl
}

// DescribeFunc turns the function into an engine declaration.
func DescribeFunc(fset *token.FileSet, fn *ast.FuncDecl) expand.Declaration {
	return expand.Declaration{
		Name: fn.Name.Name,
		Kind: expand.DeclKindOther,
		Pos:  fset.Position(fn.Pos()),
	}
}

// declPos is the "type" keyword for standalone declarations and the type name
// for declarations inside a group.
func declPos(gen *ast.GenDecl, spec *ast.TypeSpec) token.Pos {
	if gen != nil && !gen.Lparen.IsValid() {
		return gen.Pos()
	}

	return spec.Pos()
}

func embeddedNames(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}

	var names []string
	for _, f := range fields.List {
		if len(f.Names) > 0 {
			continue
		}

		names = append(names, baseName(f.Type))
	}

	return names
}

func baseName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}

	// Instantiated generic bases are named after the generic type.
	switch x := expr.(type) {
	case *ast.IndexExpr:
		expr = x.X
	case *ast.IndexListExpr:
		expr = x.X
	}

	return types.ExprString(expr)
}

func typeParamNames(params *ast.FieldList) []string {
	if params == nil {
		return nil
	}

	var names []string
	for _, f := range params.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}

	return names
}
