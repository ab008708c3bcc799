package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/quill/internal/config"
	"github.com/simonhull/quill/internal/output"
	"github.com/spf13/cobra"
)

// InitCmd creates the 'init' command that writes a default quill.yml
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a quill.yml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				output.Error(err.Error())
				return err
			}

			path := filepath.Join(root, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				err := fmt.Errorf("%s already exists (use --force to overwrite)", path)
				output.Error(err.Error())
				return err
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				output.Error(err.Error())
				return err
			}

			if err := config.Save(path, config.Default()); err != nil {
				output.Error(err.Error())
				return err
			}

			output.Success("Created " + path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing quill.yml")
	return cmd
}
