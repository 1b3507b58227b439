package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/config"
	"github.com/pageza/cookmate/backend/internal/database"
)

const name = "cookmatectl"

// overridden during build with ldflags
var version = "dev"

// NewCommand returns the admin CLI with all subcommands attached
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "CookMate admin tooling",
		Version: version,
		Commands: []*cli.Command{
			migrateCmd(),
			seedCmd(),
			imagesCmd(),
		},
	}
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase loads configuration and connects using it
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, nil
}
