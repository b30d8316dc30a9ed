package cmd

import (
	"context"
	"fmt"

	"github.com/arebot/horasbot/internal/adapters/render/chat"
	"github.com/arebot/horasbot/internal/application"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var token string
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send one message to Arebot from the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interpreter, err := app.newInterpreter(cmd.Context())
			if err != nil {
				return err
			}

			service := application.NewService(app.dialTracker(token), app.clock)

			var reply string
			send := func(ctx context.Context) error {
				intent, err := interpreter.Interpret(ctx, args[0])
				if err != nil {
					return fmt.Errorf("interpret message: %w", err)
				}
				reply = service.Execute(ctx, intent)
				return nil
			}

			if plain {
				if err := send(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), reply)
				return err
			}

			if err := runChatSpinner(cmd.Context(), cmd.ErrOrStderr(), send); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), chat.Render(reply))
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token for the time tracking API")
	_ = cmd.MarkFlagRequired("token")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the reply without styling")

	return cmd
}
