package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/osse101/crimson/internal/config"
	"github.com/osse101/crimson/internal/database"
)

// newMigrateCommand applies the ticket schema used by local and test
// databases. Production stores are owned by the ticketing bot.
func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply the ticket schema to DATABASE_URL (development databases only)",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			initLogger(cfg)

			applied, err := database.Migrate(c.Context, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if applied == 0 {
				fmt.Fprintln(c.App.Writer, "No new migrations to run")
				return nil
			}
			fmt.Fprintf(c.App.Writer, "Applied %d migrations\n", applied)
			return nil
		},
	}
}
