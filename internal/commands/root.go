package commands

import (
	"github.com/simonhull/quill"
	"github.com/simonhull/quill/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the quill CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Regenerate PyQt modules from Qt Designer and resource files",
		Long: `Quill keeps generated PyQt modules in step with their sources.

It walks the project for .ui files and the resources directory for .qrc
files, runs pyuic6 and pyrcc5 for every generated module that is missing or
older than its source, and patches the output:
• the main window module imports the compiled resources
• resource modules are rewritten from PyQt5 to PyQt6`,
		Version:       quill.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("root", "", "Project root (default: current directory)")
	cmd.PersistentFlags().String("config", "", "Config file (default: <root>/quill.yml)")

	return cmd
}

// NewApp assembles the root command with every subcommand attached
func NewApp() *cobra.Command {
	root := RootCmd()
	root.AddCommand(BuildCmd())
	root.AddCommand(KindsCmd())
	root.AddCommand(InitCmd())
	return root
}
