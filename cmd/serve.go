package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sizebots/sizebot-go/internal/bot"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return bot.StartBot()
	},
}
