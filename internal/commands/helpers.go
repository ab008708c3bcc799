package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/quill/internal/config"
	"github.com/simonhull/quill/internal/regen"
	"github.com/spf13/cobra"
)

// projectRoot resolves --root, defaulting to the working directory
func projectRoot(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}
		root = wd
	}
	return filepath.Abs(root)
}

// loadProject resolves the project root and its configuration
func loadProject(cmd *cobra.Command) (string, *config.Config, error) {
	root, err := projectRoot(cmd)
	if err != nil {
		return "", nil, err
	}

	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(root, file)
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}

// newRegistry registers the UI and resource kinds described by cfg.
// tools maps configured tool names to resolved executables; names missing
// from the map are used as-is.
func newRegistry(cfg *config.Config, tools map[string]string) (*regen.Registry, error) {
	tool := func(name string) string {
		if p, ok := tools[name]; ok {
			return p
		}
		return name
	}

	registry := regen.NewRegistry()
	if err := registry.Register(regen.NewUIKind(regen.UIOptions{
		Tool:           tool(cfg.Tools.UIC),
		Suffix:         cfg.UI.Suffix,
		MainWindow:     cfg.UI.MainWindow,
		ResourceImport: cfg.UI.ResourceImport,
	})); err != nil {
		return nil, err
	}
	if err := registry.Register(regen.NewResourceKind(regen.ResourceOptions{
		Tool:        tool(cfg.Tools.RCC),
		Suffix:      cfg.Resources.Suffix,
		Compression: cfg.Resources.Compression,
		ReplaceFrom: cfg.Resources.ReplaceFrom,
		ReplaceTo:   cfg.Resources.ReplaceTo,
	})); err != nil {
		return nil, err
	}
	return registry, nil
}

// jobsFor maps kinds onto the project layout. Recursive kinds walk the
// source tree; flat kinds read the resources directory and write into the
// UI directory.
func jobsFor(kinds []regen.Kind, cfg *config.Config, root string) []regen.Job {
	source, ui, resources := cfg.Paths(root)

	jobs := make([]regen.Job, 0, len(kinds))
	for _, kind := range kinds {
		if kind.Recursive {
			jobs = append(jobs, regen.Job{Kind: kind, SourceDir: source})
			continue
		}
		jobs = append(jobs, regen.Job{Kind: kind, SourceDir: resources, TargetDir: ui})
	}
	return jobs
}
