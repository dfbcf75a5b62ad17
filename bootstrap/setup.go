package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/va6996/tourplanner/config"
	"github.com/va6996/tourplanner/dates"
	"github.com/va6996/tourplanner/log"
	"github.com/va6996/tourplanner/orm"
	"github.com/va6996/tourplanner/render"
)

// App holds the initialized components of the application
type App struct {
	Config   *config.Config
	Resolver *dates.Resolver
	Locale   language.Tag

	db *gorm.DB
}

// Setup initializes logging and the components that need no external resources.
// Storage is opened on first use by DB.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := log.Init(cfg.Log.Level); err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Resolver: dates.NewResolver(),
		Locale:   render.ParseLocale(cfg.Locale),
	}
	log.Debugf(ctx, "Setup complete (storage: %s, locale: %s)", cfg.Storage.Driver, app.Locale)
	return app, nil
}

// DB opens the configured database on first call and returns it afterwards.
func (a *App) DB(ctx context.Context) (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	log.Debugf(ctx, "Opening %s storage", a.Config.Storage.Driver)
	db, err := orm.Open(a.Config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.db = db
	return db, nil
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := orm.Close(a.db)
	a.db = nil
	return err
}
