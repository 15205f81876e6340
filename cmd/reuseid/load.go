package main

import (
	"fmt"
	"go/token"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"github.com/sirkon/reuseid/internal/gen"
)

// loadPackages parses packages matching patterns. Packages that could not be parsed are
// logged and skipped.
func loadPackages(log zerolog.Logger, patterns []string) ([]gen.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Fset: fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	res := make([]gen.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			log.Warn().Str("package", pkg.PkgPath).Msg(perr.Error())
		}

		if len(pkg.GoFiles) == 0 || len(pkg.Syntax) == 0 {
			log.Debug().Str("package", pkg.PkgPath).Msg("no parsed files, skipping")
			continue
		}

		res = append(res, gen.Package{
			Name:  pkg.Name,
			Dir:   filepath.Dir(pkg.GoFiles[0]),
			Fset:  fset,
			Files: pkg.Syntax,
		})
	}

	log.Debug().Int("packages", len(res)).Strs("patterns", patterns).Msg("loaded")

	return res, nil
}
