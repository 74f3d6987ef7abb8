package main

import (
	"context"
	"time"

	"github.com/ryo-harano/coffee-app/internal/auth"
	"github.com/ryo-harano/coffee-app/internal/config"
	"github.com/ryo-harano/coffee-app/internal/db"
	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/outbox"
	"github.com/ryo-harano/coffee-app/internal/server"
	"github.com/ryo-harano/coffee-app/internal/session"
	"github.com/ryo-harano/coffee-app/internal/sheets"
	"github.com/ryo-harano/coffee-app/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx := context.Background()

	blobs := openStore(cfg, log)
	syncer := openSyncer(cfg, log)

	box := outbox.New(syncer)
	defer box.Close()

	menuRepo, err := menu.NewRepository(ctx, blobs)
	if err != nil {
		log.Fatal("loading menu", zap.Error(err))
	}
	menuSvc := menu.NewService(menuRepo, box)

	orderRepo, err := order.NewRepository(ctx, blobs)
	if err != nil {
		log.Fatal("loading orders", zap.Error(err))
	}
	orderSvc := order.NewService(orderRepo, box)

	admin, err := auth.NewAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatal("configuring admin account", zap.Error(err))
	}

	router := server.NewRouter(server.Deps{
		MenuSvc:    menuSvc,
		OrderSvc:   orderSvc,
		Controller: session.NewController(menuSvc, orderSvc),
		Admin:      admin,
	})

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func openStore(cfg *config.Config, log *zap.Logger) store.Store {
	if !cfg.HasDatabase() {
		log.Warn("no database configured, state will not survive restarts")
		return store.NewMemory()
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatal("connecting to database", zap.Error(err))
	}

	pg := store.NewPostgres(database)
	if err := pg.EnsureSchema(context.Background()); err != nil {
		log.Fatal("preparing storage schema", zap.Error(err))
	}
	return pg
}

func openSyncer(cfg *config.Config, log *zap.Logger) sheets.Syncer {
	if !cfg.HasSheets() {
		log.Warn("spreadsheet mirroring disabled, set SHEET_ID and GOOGLE_CREDENTIALS_FILE to enable")
		return sheets.Nop{}
	}

	loc, err := time.LoadLocation(cfg.SheetsTimezone)
	if err != nil {
		log.Warn("invalid SHEETS_TIMEZONE, falling back to UTC", zap.String("tz", cfg.SheetsTimezone))
		loc = time.UTC
	}

	syncer, err := sheets.NewGoogle(context.Background(), cfg.CredentialsFile, cfg.SheetID, loc)
	if err != nil {
		log.Warn("spreadsheet client unavailable, mirroring disabled", zap.Error(err))
		return sheets.Nop{}
	}
	return syncer
}
