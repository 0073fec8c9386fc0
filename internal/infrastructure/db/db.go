package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// Open connects to the database named by DATABASE_URL. Postgres in
// production; anything else is treated as a sqlite DSN, which the tests use
// with ":memory:".
func Open(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, entities.NotConfiguredError("DATABASE_URL")
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// Migrate creates or updates every table the service owns.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&entities.User{},
		&entities.Profile{},
		&entities.Article{},
		&entities.Book{},
		&entities.Chapter{},
		&entities.Character{},
		&entities.WorldItem{},
		&entities.Sitemap{},
		&entities.SitemapLink{},
		&entities.WebhookEvent{},
	)
}
