package main

import (
	"github.com/spf13/cobra"

	"github.com/abhurtya/real-deal-server-side/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample properties and news articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			properties := seed.Properties()
			if err := a.propertyGateway().CreateMany(ctx, properties); err != nil {
				return err
			}
			news := seed.News()
			if err := a.newsGateway().CreateMany(ctx, news); err != nil {
				return err
			}
			logger.Info("seeded", "properties", len(properties), "news", len(news))
			return nil
		},
	}
}
