package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sizebots/sizebot-go/config"
	"github.com/sizebots/sizebot-go/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()
		database, err := db.NewDatabase(cfg.DBConfig)
		if err != nil {
			return err
		}
		return database.Migrate()
	},
}
