package cmd

import (
	"fmt"
	"time"

	appsview "github.com/bnema/dsec/internal/adapters/render/apps"
	"github.com/bnema/dsec/internal/domain"
	"github.com/spf13/cobra"
)

func newAppCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Manage apps",
	}

	cmd.AddCommand(
		newAppCreateCmd(app),
		newAppListCmd(app),
		newAppGetCmd(app),
		newAppDeleteCmd(app),
	)

	return cmd
}

func newAppCreateCmd(app *app) *cobra.Command {
	var name string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create an app with its own secret store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}
			if name == "" {
				name = args[0]
			}
			if err := domain.ValidateAppName(name); err != nil {
				return err
			}

			created, err := app.apps.CreateApp(cmd.Context(), id, name)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, created)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created app %s (%s)\n", created.ID, created.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (default: the app id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAppListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apps with their secret counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.apps.ListApps(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, summaries)
			}

			rendered, err := app.appsRenderer(summaries, appsview.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render apps: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAppGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := requireApp(cmd, app, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, found)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id:      %s\n", found.ID)
			_, _ = fmt.Fprintf(out, "name:    %s\n", found.Name)
			_, err = fmt.Fprintf(out, "created: %s\n", found.CreatedAt.Format(time.RFC3339))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAppDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an app and every secret it holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			if err := app.apps.DeleteApp(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted app %s\n", id)
			return err
		},
	}
}

// requireApp validates raw and loads the app, turning absence into
// domain.ErrAppNotFound.
func requireApp(cmd *cobra.Command, app *app, raw string) (domain.App, error) {
	id := domain.AppID(raw)
	if err := id.Validate(); err != nil {
		return domain.App{}, err
	}

	found, ok, err := app.apps.GetApp(cmd.Context(), id)
	if err != nil {
		return domain.App{}, err
	}
	if !ok {
		return domain.App{}, fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
	}

	return found, nil
}
