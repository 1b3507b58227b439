package cli

import (
	"context"
	"log"

	"github.com/urfave/cli/v3"

	"github.com/pageza/cookmate/backend/internal/database"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			log.Println("[Migrate] schema is up to date")
			return nil
		},
	}
}
