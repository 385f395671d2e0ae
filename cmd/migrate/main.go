package main

import (
	"database/sql"

	"github.com/init-pkg/excel-import/internal/config"

	nova_config_loader "github.com/init-pkg/nova/tools/config-loader"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var cfg = nova_config_loader.MustLoad[config.Config]()

	db, err := sql.Open("postgres", cfg.Infrastructure.Db.Dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		panic(err)
	}
}
