package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/infra/configfile"
)

func configCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect workoutlog configuration",
	}

	c.AddCommand(configShowCmd())
	return c
}

func configShowCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := loadWorkspace(workspace)
			cfg, err := ws.strictConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ws.root != "" {
				fmt.Fprintf(out, "# %s/%s\n", ws.root, configfile.FileName)
			} else {
				fmt.Fprintf(out, "# no %s found, showing defaults\n", configfile.FileName)
			}
			return printConfig(out, cfg)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

type configView struct {
	Workoutlog struct {
		Server struct {
			BaseURL string `yaml:"base_url"`
			AddPath string `yaml:"add_path"`
		} `yaml:"server"`
		Response struct {
			SuccessPath string `yaml:"success_path"`
		} `yaml:"response"`
		HTTP struct {
			Timeout string `yaml:"timeout"`
		} `yaml:"http"`
	} `yaml:"workoutlog"`
}

func printConfig(w io.Writer, cfg domain.Config) error {
	var v configView
	v.Workoutlog.Server.BaseURL = cfg.Server.BaseURL
	v.Workoutlog.Server.AddPath = cfg.Server.AddPath
	v.Workoutlog.Response.SuccessPath = cfg.Response.SuccessPath
	v.Workoutlog.HTTP.Timeout = cfg.HTTP.Timeout.String()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
