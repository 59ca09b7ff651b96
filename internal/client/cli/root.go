package cli

import "github.com/spf13/cobra"

func (a *App) newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "gophnotes",
		Short:         "Command-line client for the gophnotes API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect(cmd.Context())
		},
	}

	// The config file itself is read by config.LoadConfig before cobra runs.
	f := root.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "path to a JSON or YAML config file")
	f.StringVarP(&a.config.ServerEndpointAddr, "addr", "a", a.config.ServerEndpointAddr, "server address (host:port)")
	f.StringVar(&a.config.SessionFile, "session-file", a.config.SessionFile, "where login sessions are stored")
	f.DurationVar(&a.config.RequestTimeout, "timeout", a.config.RequestTimeout, "per-request timeout")
	f.BoolVar(&a.jsonOutput, "json", false, "print results as JSON")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log RPC diagnostics to stderr")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.meCommand(),
		a.notesCommand(),
		a.usersCommand(),
	)

	return root
}
