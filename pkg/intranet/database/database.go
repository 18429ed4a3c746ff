package database

import (
	"fmt"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func Connect(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		// TranslateError turns unique-constraint violations into
		// gorm.ErrDuplicatedKey; the registration guard depends on it.
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "intranet_",
		}})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Application{},
		&models.Category{},
		&models.File{},
		&models.WikiArticle{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
