package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/workoutlog/internal/infra/fsworkspace"
	"github.com/aalvaropc/workoutlog/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create workoutlog.yaml in a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				root = workingDir()
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized workoutlog workspace at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
