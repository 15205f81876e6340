// Package reuseid provides an analyzer expanding declarations annotated with the
// reuse identifier directive.
package reuseid

import (
	"fmt"
	"go/ast"
	"go/token"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/reuseid/internal/config"
	"github.com/sirkon/reuseid/internal/expand"
	"github.com/sirkon/reuseid/internal/gosrc"
)

const doc = `reuseid validates declarations annotated with //reuseid:identifier

Annotated declarations must be structs embedding one of the recognized reusable view
kinds (UITableViewCell, UICollectionViewCell or UICollectionReusableView by default).
Every other annotated declaration is reported. The identifier members synthesized for
valid declarations are returned as the analyzer result.`

// Analyzer is the main entry point for the checker.
var Analyzer = &analysis.Analyzer{
	Name:       "reuseid",
	Doc:        doc,
	Requires:   []*analysis.Analyzer{inspect.Analyzer},
	Run:        run,
	ResultType: reflect.TypeOf((*Result)(nil)),
}

var (
	configPath string
	directive  string
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a YAML or TOML config, the embedded default is used if empty")
	Analyzer.Flags.StringVar(&directive, "directive", "", "override the directive triggering expansion")
}

// Result lists members synthesized for the package in source order.
type Result struct {
	Members []expand.Member
}

// loadConfig loads the config and applies the directive override on top of it.
func loadConfig(path, directiveOverride string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if directiveOverride != "" {
		cfg.Directive = directiveOverride
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("apply -directive: %w", err)
		}
	}

	return cfg, nil
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := loadConfig(configPath, directive)
	if err != nil {
		return nil, err
	}

	engine, err := cfg.Engine()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.GenDecl)(nil),
		(*ast.FuncDecl)(nil),
	}

	res := &Result{}
	pector.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		// Only file scope declarations: stack is [*ast.File, node] for them. Nothing
		// below a declaration can be annotated at file scope, so never descend.
		if len(stack) != 2 {
			return false
		}

		for _, t := range gosrc.TargetsOf(pass.Fset, node, cfg.Directive) {
			members := engine.Expand(passContext(pass, t.Pos), t.Site, t.Decl)
			res.Members = append(res.Members, members...)
		}
		return false
	})

	return res, nil
}

// passContext reports diagnostics of the declaration at pos through the pass.
func passContext(pass *analysis.Pass, pos token.Pos) expand.Context {
	return expand.ContextFunc(func(d expand.Diagnostic) {
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: d.ID,
			Message:  d.Message,
		})
	})
}
