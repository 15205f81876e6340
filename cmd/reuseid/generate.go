package main

import (
	"github.com/spf13/cobra"

	"github.com/sirkon/reuseid/internal/gen"
	"github.com/sirkon/reuseid/internal/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate [packages]",
	Short: "Write identifier members of annotated declarations",
	Long:  "Expand annotated declarations and write synthesized members into a generated file per package.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpansion(cmd, args, true)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Report annotated declarations that cannot be expanded",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpansion(cmd, args, false)
	},
}

func runExpansion(cmd *cobra.Command, args []string, write bool) error {
	s, err := newSetup(cmd)
	if err != nil {
		return err
	}

	pkgs, err := loadPackages(s.log, args)
	if err != nil {
		return err
	}

	g, err := gen.New(s.cfg, s.jobs, s.log)
	if err != nil {
		return err
	}

	var collector report.Collector
	outcomes, err := g.Run(cmd.Context(), pkgs, &collector, write)
	if err != nil {
		return err
	}

	if err := s.printer.PrintAll(&collector); err != nil {
		return err
	}

	var members int
	for _, o := range outcomes {
		members += len(o.Members)
	}
	s.log.Debug().
		Int("packages", len(outcomes)).
		Int("members", members).
		Int("diagnostics", collector.Len()).
		Msg("done")

	if collector.HasErrors() {
		return errDiagnostics
	}

	return nil
}
