package gen

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/reuseid/internal/config"
	"github.com/sirkon/reuseid/internal/expand"
	"github.com/sirkon/reuseid/internal/gosrc"
)

// ErrDialect is returned when members cannot be written in Go files.
var ErrDialect = errors.New("generated files need the go dialect")

// Package is a parsed Go package.
type Package struct {
	Name  string
	Dir   string
	Fset  *token.FileSet
	Files []*ast.File
}

// Outcome describes what happened to a single package.
type Outcome struct {
	Dir     string
	Members []expand.Member
	Written bool
	Removed bool
}

// Generator expands annotated declarations of packages and writes generated files.
type Generator struct {
	engine    *expand.Engine
	directive string
	output    string
	jobs      int
	log       zerolog.Logger
}

// New creates a generator. jobs limits the number of packages processed at once,
// GOMAXPROCS is used for non-positive values.
func New(cfg *config.Config, jobs int, log zerolog.Logger) (*Generator, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("setup engine: %w", err)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	return &Generator{
		engine:    engine,
		directive: cfg.Directive,
		output:    cfg.Output,
		jobs:      jobs,
		log:       log,
	}, nil
}

// Expand runs expansion over every annotated declaration of the package, emitting
// diagnostics into ectx. Members are returned in source order.
func (g *Generator) Expand(pkg Package, ectx expand.Context) []expand.Member {
	var members []expand.Member
	for _, file := range pkg.Files {
		name := pkg.Fset.Position(file.Pos()).Filename
		if filepath.Base(name) == g.output {
			continue
		}

		for _, t := range gosrc.Scan(pkg.Fset, file, g.directive) {
			got := g.engine.Expand(ectx, t.Site, t.Decl)
			g.log.Debug().
				Str("decl", t.Decl.Name).
				Stringer("kind", t.Decl.Kind).
				Int("members", len(got)).
				Msg("expanded")
			members = append(members, got...)
		}
	}

	return members
}

// Run expands packages concurrently. Generated files are written, or removed when a
// package has nothing to generate anymore, only if write is set.
func (g *Generator) Run(ctx context.Context, pkgs []Package, ectx expand.Context, write bool) ([]Outcome, error) {
	if write && g.engine.Dialect() != expand.DialectGo {
		return nil, fmt.Errorf("dialect %s: %w", g.engine.Dialect(), ErrDialect)
	}

	outcomes := make([]Outcome, len(pkgs))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, min(g.jobs, len(pkgs))))
	for i, pkg := range pkgs {
		eg.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			outcome, err := g.runPackage(pkg, ectx, write)
			if err != nil {
				return fmt.Errorf("package %s: %w", pkg.Dir, err)
			}

			outcomes[i] = outcome
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (g *Generator) runPackage(pkg Package, ectx expand.Context, write bool) (Outcome, error) {
	outcome := Outcome{
		Dir:     pkg.Dir,
		Members: g.Expand(pkg, ectx),
	}

	if !write {
		return outcome, nil
	}

	log := g.log.With().Str("dir", pkg.Dir).Logger()

	if len(outcome.Members) == 0 {
		removed, err := Remove(pkg.Dir, g.output)
		if err != nil {
			return outcome, err
		}
		if removed {
			log.Info().Str("file", g.output).Msg("removed stale generated file")
		}
		outcome.Removed = removed
		return outcome, nil
	}

	src, err := Render(pkg.Name, outcome.Members)
	if err != nil {
		return outcome, err
	}
	if err := Write(pkg.Dir, g.output, src); err != nil {
		return outcome, err
	}

	log.Info().Str("file", g.output).Int("members", len(outcome.Members)).Msg("generated")
	outcome.Written = true

	return outcome, nil
}
