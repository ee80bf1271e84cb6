package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/bnema/dsec/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <app> -- <command> [args...]",
		Short: "Run a command with an app's secrets in its environment",
		Long:  "Run starts the command with the current environment plus every secret of the app as KEY=value. Secrets win over variables already set.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("run requires an app and a command after '--'")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.AppID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			secrets, err := app.secrets.ListSecrets(cmd.Context(), id)
			if err != nil {
				return err
			}

			child := exec.CommandContext(cmd.Context(), args[1], args[2:]...)
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			child.Stdin = cmd.InOrStdin()
			// exec keeps the last value for duplicate keys, so secrets override.
			child.Env = append(os.Environ(), domain.SecretsAsEnv(secrets)...)

			if err := child.Run(); err != nil {
				return fmt.Errorf("run child command: %w", err)
			}

			return nil
		},
	}

	return cmd
}
