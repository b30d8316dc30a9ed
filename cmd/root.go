package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "horasbot",
		Short:         "Arebot: chat-driven time tracking assistant",
		Long:          "horasbot runs Arebot, a chat assistant that turns natural-language messages into time tracking commands: list your projects, review a week's hours, and log hours against projects.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newChatCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
