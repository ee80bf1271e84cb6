package cmd

import (
	"context"
	"fmt"
	"strings"

	dumptoml "github.com/bnema/dsec/internal/adapters/dump/toml"
	"github.com/bnema/dsec/internal/application"
	"github.com/bnema/dsec/internal/domain"
	"github.com/spf13/cobra"
)

const stdioPath = "-"

func newExportCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [app...]",
		Short: "Export apps and their secrets as TOML",
		Long:  "Export writes the given apps, or every app when none is named, to a versioned TOML bundle. The bundle holds secret values in plain text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]domain.AppID, 0, len(args))
			for _, arg := range args {
				id := domain.AppID(arg)
				if err := id.Validate(); err != nil {
					return err
				}
				ids = append(ids, id)
			}

			bundle, err := app.transfer.Export(cmd.Context(), ids...)
			if err != nil {
				return err
			}

			if output == "" || output == stdioPath {
				return dumptoml.Encode(cmd.OutOrStdout(), bundle)
			}

			if err := dumptoml.WriteFile(output, bundle); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d app(s) to %s\n", len(bundle.Apps), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCmd(app *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import apps and secrets from a TOML bundle ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				bundle domain.Bundle
				err    error
			)
			if args[0] == stdioPath {
				bundle, err = dumptoml.Decode(cmd.InOrStdin())
			} else {
				bundle, err = dumptoml.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			source := args[0]
			if source == stdioPath {
				source = "stdin"
			}
			report, err := trackImport(cmd.Context(), cmd.ErrOrStderr(), source, len(bundle.Apps),
				func(ctx context.Context) (application.ImportReport, error) {
					return app.transfer.Import(ctx, bundle, overwrite)
				})
			if err != nil {
				return err
			}

			return writeImportReport(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Upsert secrets into apps that already exist instead of skipping them")

	return cmd
}

func writeImportReport(cmd *cobra.Command, report application.ImportReport) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "created: %s\n", joinIDs(report.Created))
	_, _ = fmt.Fprintf(out, "updated: %s\n", joinIDs(report.Updated))
	_, _ = fmt.Fprintf(out, "skipped: %s\n", joinIDs(report.Skipped))
	_, err := fmt.Fprintf(out, "secrets written: %d\n", report.SecretsWritten)
	return err
}

func joinIDs(ids []domain.AppID) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, ", ")
}
