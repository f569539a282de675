package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/stagevault/pkg/app"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "start the HTTP server",
	Aliases: []string{"run", "server"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(configPath)
		defer func() { _ = a.Close() }()

		return a.Run()
	},
}

// registerServeCommand 注册 serve 命令.
func registerServeCommand() {
	rootCmd.AddCommand(serveCmd)
}
