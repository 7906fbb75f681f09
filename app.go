package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/abhurtya/real-deal-server-side/config"
	"github.com/abhurtya/real-deal-server-side/gateway"
	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/store"
	"github.com/abhurtya/real-deal-server-side/utils"
)

// app holds the long-lived clients shared by every command.
type app struct {
	properties store.Collection[models.Property]
	news       store.Collection[models.News]
	users      store.Collection[models.User]
	redis      *redis.Client
	closers    []func(context.Context) error
}

func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{redis: utils.NewRedis(cfg)}
	a.closers = append(a.closers, func(context.Context) error { return a.redis.Close() })

	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using in-memory store; data is lost on exit")
		a.properties = store.NewMemory[models.Property]()
		a.news = store.NewMemory[models.News]()
		a.users = store.NewMemory[models.User]("email")
	case "mongo":
		client, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			_ = a.close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		logger.Info("mongodb connected", "database", cfg.MongoDatabase)

		db := client.Database(cfg.MongoDatabase)
		users := db.Collection(cfg.UsersColl)
		if err := store.EnsureIndexes(ctx, users); err != nil {
			_ = a.close(ctx)
			return nil, err
		}
		a.properties = store.NewMongo[models.Property](db.Collection(cfg.PropertiesColl))
		a.news = store.NewMongo[models.News](db.Collection(cfg.NewsColl))
		a.users = store.NewMongo[models.User](users)
	default:
		_ = a.close(ctx)
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	return a, nil
}

func (a *app) propertyGateway() *gateway.Gateway[models.Property, *models.Property] {
	return gateway.New[models.Property](a.properties, utils.NewValidator())
}

func (a *app) newsGateway() *gateway.Gateway[models.News, *models.News] {
	return gateway.New[models.News](a.news, utils.NewValidator())
}

func (a *app) close(ctx context.Context) error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
