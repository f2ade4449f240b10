package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/infra/configfile"
	"github.com/aalvaropc/workoutlog/internal/infra/logger"
	"github.com/aalvaropc/workoutlog/internal/infra/workoutapi"
	"github.com/aalvaropc/workoutlog/internal/usecase"
)

var errNotAdded = errors.New("workout not added")

func addCmd() *cobra.Command {
	var workspace string
	var server string
	var workout string
	var weight string

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a workout without opening the form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			ws := loadWorkspace(workspace)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.logRoot(),
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := ws.strictConfig()
			if err != nil {
				return err
			}
			if server != "" {
				cfg.Server.BaseURL = server
				if err := configfile.Validate("--server", cfg); err != nil {
					return err
				}
			}

			log := logger.L()
			nav := &recordingNavigator{log: log}
			form := usecase.NewForm(
				usecase.NewSubmitWorkout(workoutapi.NewFromConfig(cfg, log), log),
				&streamNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()},
				nav,
			)

			return submitForm(cmd.Context(), form, nav, workout, weight)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&server, "server", "", "Backend base URL (overrides workoutlog.yaml)")
	c.Flags().StringVar(&workout, "workout", "", "Today's workout, e.g. \"CHEST DAY\" (required)")
	c.Flags().StringVar(&weight, "weight", "", "Weight, a number (required)")

	_ = c.MarkFlagRequired("workout")
	_ = c.MarkFlagRequired("weight")
	return c
}

// submitForm fills the form the way a user would and submits it once.
// It succeeds only if the form navigated home, i.e. the workout was added.
func submitForm(ctx context.Context, form *usecase.Form, nav *recordingNavigator, workout, weight string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	events := []domain.Event{
		domain.WorkoutChanged{Text: workout},
		domain.WeightChanged{Raw: weight},
		domain.SubmitRequested{},
	}
	for _, ev := range events {
		if err := form.Dispatch(ctx, ev); err != nil {
			if domain.IsKind(err, domain.KindInvalidInput) {
				return invalidInput(workout, weight, err)
			}
			return err
		}
	}

	if nav.last() != domain.HomeRoute {
		return errNotAdded
	}
	return nil
}

func invalidInput(workout, weight string, err error) error {
	if workout == "" {
		return fmt.Errorf("--workout must not be empty: %w", err)
	}
	if _, perr := domain.ParseWeight(weight); perr != nil {
		return fmt.Errorf("--weight must be a number: %w", perr)
	}
	return err
}
