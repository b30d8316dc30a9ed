package cmd

import (
	"github.com/arebot/horasbot/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var bind string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			interpreter, err := app.newInterpreter(cmd.Context())
			if err != nil {
				return err
			}

			sessions := web.NewSessions(app.dialTracker, app.clock)
			return web.Run(web.NewServer(sessions, interpreter, bind, port))
		},
	}

	cmd.Flags().StringVar(&bind, "bind", app.config.GetString(serverBindKey), "Address to listen on")
	cmd.Flags().IntVar(&port, "port", app.config.GetInt(serverPortKey), "Port to listen on")

	return cmd
}
