package postgres_client

import (
	"github.com/init-pkg/excel-import/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func New(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Infrastructure.Db.Dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}
