package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/workoutlog/internal/infra/configfile"
	"github.com/aalvaropc/workoutlog/internal/infra/logger"
	"github.com/aalvaropc/workoutlog/internal/infra/workoutapi"
	"github.com/aalvaropc/workoutlog/internal/ui/tui"
	"github.com/aalvaropc/workoutlog/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var server string

	cmd := &cobra.Command{
		Use:          "workoutlog",
		Short:        "workoutlog — log today's workout from the terminal",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws := loadWorkspace(workspace)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.logRoot(),
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, cfgErr := ws.cfg, ws.err
			if server != "" {
				cfg.Server.BaseURL = server
				if err := configfile.Validate("--server", cfg); err != nil {
					return err
				}
			}
			if cfgErr != nil && !configfile.IsMissing(cfgErr) {
				logger.L().Error("config.invalid", "err", cfgErr)
			}

			log := logger.L()
			deps := tui.Deps{
				Submit:    usecase.NewSubmitWorkout(workoutapi.NewFromConfig(cfg, log), log),
				ServerURL: cfg.Server.BaseURL,
				ConfigErr: cfgErr,
				Logger:    log,
				Debug:     debug,
				LogPath:   logger.Path(),
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .workoutlog/logs/workoutlog.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&server, "server", "", "Backend base URL (overrides workoutlog.yaml)")

	cmd.AddCommand(addCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(configCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)
	return wd
}
