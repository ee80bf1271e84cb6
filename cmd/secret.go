package cmd

import (
	"fmt"
	"io"
	"strings"

	appsview "github.com/bnema/dsec/internal/adapters/render/apps"
	"github.com/bnema/dsec/internal/domain"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage an app's secrets",
	}

	cmd.AddCommand(
		newSecretListCmd(app),
		newSecretGetCmd(app),
		newSecretSetCmd(app),
		newSecretDeleteCmd(app),
	)

	return cmd
}

func newSecretListCmd(app *app) *cobra.Command {
	var asJSON bool
	var reveal bool

	cmd := &cobra.Command{
		Use:   "list <app>",
		Short: "List an app's secrets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := requireApp(cmd, app, args[0])
			if err != nil {
				return err
			}

			secrets, err := app.secrets.ListSecrets(cmd.Context(), found.ID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, secrets)
			}

			rendered, err := app.secretRenderer(found, secrets, appsview.RenderOptions{Now: app.now(), Reveal: reveal})
			if err != nil {
				return fmt.Errorf("render secrets: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output (values included)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show secret values instead of masking them")

	return cmd
}

func newSecretGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <app> <key>",
		Short: "Print one secret value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			secret, err := app.secrets.RequireSecret(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, secret)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), secret.Value)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set <app> <key> [value]",
		Short: "Create or replace a secret",
		Args: func(cmd *cobra.Command, args []string) error {
			if fromStdin {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}
			key := args[1]
			if err := domain.ValidateSecretKey(key); err != nil {
				return err
			}

			var value string
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read secret value from stdin: %w", err)
				}
				value = strings.TrimRight(string(data), "\r\n")
			} else {
				value = args[2]
			}

			secret, err := app.secrets.AddSecret(cmd.Context(), id, key, value)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %s in %s\n", secret.Key, id)
			return err
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the value from standard input")

	return cmd
}

func newSecretDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <app> <key>",
		Short: "Delete a secret (no error when it is already gone)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			if err := app.secrets.DeleteSecret(cmd.Context(), id, args[1]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s from %s\n", args[1], id)
			return err
		},
	}
}
