package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dsec",
		Short:         "dsec: local secret store for development apps",
		Long:          "dsec keeps per-app configuration secrets in isolated local stores, and can serve them over HTTP, export and import them, or inject them into a command's environment.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newVersionCmd())

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newAppCmd(app),
		newSecretCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newRunCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
