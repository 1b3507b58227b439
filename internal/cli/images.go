package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/urfave/cli/v3"

	"github.com/pageza/cookmate/backend/config"
	"github.com/pageza/cookmate/backend/internal/service"
)

func imagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "images",
		Usage: "Manage recipe images",
		Commands: []*cli.Command{
			{
				Name:  "push",
				Usage: "Upload a directory of images to the configured S3 bucket",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Value:   "static/images",
						Usage:   "Directory to upload",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := config.LoadConfig()
					if err != nil {
						return fmt.Errorf("failed to load configuration: %w", err)
					}
					if !cfg.S3Enabled() {
						return errors.New("S3_BUCKET_NAME is not set")
					}

					store, err := config.NewS3Config(ctx, cfg)
					if err != nil {
						return err
					}

					n, err := service.NewAssetService(store, cfg.StaticDir).PushImages(ctx, cmd.String("dir"))
					if err != nil {
						return err
					}
					log.Printf("[Images] uploaded %d files to %s", n, cfg.S3BucketName)
					return nil
				},
			},
		},
	}
}
