package commands

import (
	"fmt"

	"github.com/simonhull/quill/internal/env"
	"github.com/simonhull/quill/internal/exec"
	"github.com/simonhull/quill/internal/filesystem"
	"github.com/simonhull/quill/internal/logger"
	"github.com/simonhull/quill/internal/output"
	"github.com/simonhull/quill/internal/regen"
	"github.com/spf13/cobra"
)

// BuildCmd creates the 'build' command that regenerates stale modules
func BuildCmd() *cobra.Command {
	var force, resources, strict, dryRun bool
	var kinds []string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Regenerate missing or outdated UI and resource modules",
		Long: `Regenerate Python modules from .ui and .qrc files.

A module is rebuilt when it is missing, when its source is newer, or when a
force flag applies. Forced modules are deleted before the generator runs.

A generator that fails is reported and the remaining files are still built,
unless --strict is given.

Examples:
  quill build
  quill build --resources
  quill build --force --dry-run
  quill build --kind ui`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd, buildFlags{
				force:     force,
				resources: resources,
				strict:    strict,
				dryRun:    dryRun,
				kinds:     kinds,
			})
			if err != nil {
				output.Error(err.Error())
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force rebuild of all files")
	cmd.Flags().BoolVar(&resources, "resources", false, "Force rebuild of resource modules")
	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first generator failure")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be rebuilt without running anything")
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "Only build these kinds (see 'quill kinds')")

	return cmd
}

type buildFlags struct {
	force, resources, strict, dryRun bool
	kinds                            []string
}

func runBuild(cmd *cobra.Command, flags buildFlags) error {
	root, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}

	// Environment problems are fatal and must surface before any file is touched.
	tools, err := env.Check(cfg.Tools.UIC, cfg.Tools.RCC)
	if err != nil {
		return err
	}

	registry, err := newRegistry(cfg, tools)
	if err != nil {
		return err
	}
	kinds, err := registry.Select(flags.kinds...)
	if err != nil {
		return err
	}

	log := logger.New(logger.ForVerbosity(output.IsVerbose()), cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	executor := exec.NewExecutor(&exec.Options{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Prefix:  "   │ ",
		Spinner: cfg.Build.Spinner,
	})
	regenerator := regen.New(executor, &regen.Options{
		Logger: log,
		Walk:   filesystem.WalkOptions{IgnoreDirs: cfg.Layout.Ignore},
	})

	policy := regen.Policy{
		Force:               flags.force,
		ForceResources:      flags.resources,
		ContinueOnToolError: !(flags.strict || cfg.Build.Strict),
		DryRun:              flags.dryRun,
	}
	output.Verbose(fmt.Sprintf("Building %v in %s (force=%v, resources=%v, dry-run=%v)",
		registry.Names(), root, policy.Force, policy.ForceResources, policy.DryRun))

	report, err := regenerator.Run(cmd.Context(), jobsFor(kinds, cfg, root), policy)
	summarize(report, policy)
	return err
}

func summarize(report regen.Report, policy regen.Policy) {
	if policy.DryRun {
		output.Info(fmt.Sprintf("%d module(s) would be rebuilt, %d up to date", len(report.Planned), len(report.Skipped)))
		return
	}

	if len(report.Failed) > 0 {
		output.Warn(fmt.Sprintf("%d module(s) could not be generated:", len(report.Failed)))
		for _, source := range report.Failed {
			output.Step(source)
		}
	}
	output.Success(fmt.Sprintf("%d module(s) rebuilt, %d patched, %d up to date",
		len(report.Built), len(report.Patched), len(report.Skipped)))
}
