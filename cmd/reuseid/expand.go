package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirkon/reuseid/internal/gosrc"
	"github.com/sirkon/reuseid/internal/report"
)

var expandCmd = &cobra.Command{
	Use:   "expand --at <file.go:line[:column]>",
	Short: "Print members synthesized for the declaration at a position",
	Args:  cobra.NoArgs,
	RunE:  runExpand,
}

func init() {
	expandCmd.Flags().String("at", "", "position inside an annotated declaration")
	expandCmd.Flags().String("dialect", "", "dialect of printed members (go|swift), the config one if empty")
	_ = expandCmd.MarkFlagRequired("at")
}

func runExpand(cmd *cobra.Command, _ []string) error {
	s, err := newSetup(cmd)
	if err != nil {
		return err
	}

	at, err := cmd.Flags().GetString("at")
	if err != nil {
		return err
	}
	dialectName, err := cmd.Flags().GetString("dialect")
	if err != nil {
		return err
	}
	if dialectName != "" {
		if err := s.cfg.Dialect.UnmarshalText([]byte(dialectName)); err != nil {
			return fmt.Errorf("parse --dialect: %w", err)
		}
	}

	path, line, col, err := parsePosition(at)
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tf := fset.File(file.Pos())
	if line > tf.LineCount() {
		return fmt.Errorf("%s has %d lines, position %s is out of range", path, tf.LineCount(), at)
	}
	pos := tf.LineStart(line) + token.Pos(col-1)

	target := gosrc.NewIndex(gosrc.Scan(fset, file, s.cfg.Directive)...).At(pos)
	if target == nil {
		return fmt.Errorf("no declaration annotated with //%s at %s", s.cfg.Directive, at)
	}

	engine, err := s.cfg.Engine()
	if err != nil {
		return err
	}

	var collector report.Collector
	members := engine.Expand(&collector, target.Site, target.Decl)
	s.log.Debug().Str("decl", target.Decl.Name).Int("members", len(members)).Msg("expanded")

	for _, m := range members {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), m.Source); err != nil {
			return fmt.Errorf("print member: %w", err)
		}
	}

	if err := s.printer.PrintAll(&collector); err != nil {
		return err
	}
	if collector.HasErrors() {
		return errDiagnostics
	}

	return nil
}

// parsePosition splits "file.go:line[:column]". Column defaults to 1.
func parsePosition(at string) (path string, line, col int, err error) {
	parts := strings.Split(at, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return "", 0, 0, fmt.Errorf("invalid position %q, want file.go:line[:column]", at)
	}

	line, err = strconv.Atoi(parts[1])
	if err != nil || line < 1 {
		return "", 0, 0, fmt.Errorf("invalid line in position %q", at)
	}

	col = 1
	if len(parts) == 3 {
		col, err = strconv.Atoi(parts[2])
		if err != nil || col < 1 {
			return "", 0, 0, fmt.Errorf("invalid column in position %q", at)
		}
	}

	return parts[0], line, col, nil
}
