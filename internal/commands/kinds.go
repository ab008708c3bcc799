package commands

import (
	"fmt"
	"strings"

	"github.com/simonhull/quill/internal/output"
	"github.com/spf13/cobra"
)

// KindsCmd creates the 'kinds' command listing what quill can regenerate
func KindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the source kinds quill regenerates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, cfg, err := loadProject(cmd)
			if err != nil {
				output.Error(err.Error())
				return err
			}

			registry, err := newRegistry(cfg, nil)
			if err != nil {
				output.Error(err.Error())
				return err
			}

			source, ui, resources := cfg.Paths(root)
			for _, kind := range registry.Kinds() {
				output.Info(fmt.Sprintf("%s: *%s → *%s via %s", kind.Name, kind.SourceExt, kind.ArtifactSuffix, kind.Tool))
				if kind.Recursive {
					output.Step("sources: every directory under " + source)
				} else {
					output.Step(fmt.Sprintf("sources: %s (not recursive), output: %s", resources, ui))
				}
				output.Step("patches: " + strings.Join(kind.Rules.Names(), ", "))
			}
			return nil
		},
	}
}
